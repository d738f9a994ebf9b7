package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
	"github.com/duelboard/duelboard/internal/infra/elasticsearch/index"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run duelboard setup",
	Long:  "Installs the index templates that duelboard needs in Elasticsearch",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		esClient, err := common.NewClient(appConfig.Elasticsearch)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not setup Elasticsearch client")
		}

		log.Info().Msg("Setting up Index templates")
		templatesSetup := index.DefaultTemplateSetup(esClient)
		if err := templatesSetup.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to install index templates")
		}
		log.Info().Msg("Setup complete.")
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
