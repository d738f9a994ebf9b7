package main

import (
	"github.com/duelboard/duelboard/app/cmd"

	_ "github.com/duelboard/duelboard/docs"
)

func main() {
	cmd.Execute()
}

// @title Duelboard API
// @version 0.0.1
// @description A content submission and pairwise voting platform backed by Elasticsearch

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @securityDefinitions.basic BasicAuth
// @BasePath /
