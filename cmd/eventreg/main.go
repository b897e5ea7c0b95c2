// @title Event Registration API
// @version 1.0
// @description Events, registrations and attendee listings with email notifications.
// @BasePath /
package main

import "eventregistration/cmd/eventreg/cmd"

func main() {
	cmd.Execute()
}
