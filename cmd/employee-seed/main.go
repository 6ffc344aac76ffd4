package main

import (
	"log"

	"github.com/psds-microservice/employee-seed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
