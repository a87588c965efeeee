package main

import (
	"os"

	_ "github.com/tbcare/screening-api/api/swagger"
)

//go:generate swag init --generalInfo main.go --dir ./,../../internal/handler,../../internal/models,../../internal/dto --output ../../api/swagger --outputTypes go

// @title TB Screening API
// @version 1.0.0
// @description Clinical data capture and export for TB screening sites.
// @BasePath /
// @schemes http https

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
