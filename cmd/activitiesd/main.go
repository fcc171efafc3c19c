package main

import "github.com/mergington/activities/cmd/activitiesd/cmd"

func main() {
	cmd.Execute()
}
