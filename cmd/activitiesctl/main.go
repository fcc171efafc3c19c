package main

import "github.com/mergington/activities/cmd/activitiesctl/cmd"

func main() {
	cmd.Execute()
}
