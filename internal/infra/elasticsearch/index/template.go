package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"

	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
	"github.com/duelboard/duelboard/internal/infra/elasticsearch/contest"
	esContent "github.com/duelboard/duelboard/internal/infra/elasticsearch/content"
	esUser "github.com/duelboard/duelboard/internal/infra/elasticsearch/user"
	esVote "github.com/duelboard/duelboard/internal/infra/elasticsearch/vote"
)

type TemplateName string
type Pattern = string
type Json = map[string]interface{}
type Mappings = map[string]interface{}

// Template defines a template to be applied when setup is run
type Template struct {
	name     TemplateName // ignored when serialising because the name doesn't start with a capital
	Patterns []Pattern    `json:"index_patterns"`
	Mappings Mappings     `json:"mappings,omitempty"`
}

func (t *Template) Name() TemplateName {
	return t.name
}

func NewTemplate(name TemplateName, patterns []Pattern, mappings Mappings) Template {
	return Template{name: name, Patterns: patterns, Mappings: mappings}
}

// TemplatesSetup holds a list of Templates and has the ability to actually
// send them to the server
type TemplatesSetup struct {
	esClient  *elasticsearch.Client
	Templates []Template
}

// Returns the default Template setter upper
func DefaultTemplateSetup(esClient *elasticsearch.Client) TemplatesSetup {
	return TemplatesSetup{
		esClient: esClient,
		Templates: []Template{
			ContentTemplate,
			VoteEventsTemplate,
			UsersTemplate,
			ContestsTemplate,
		},
	}
}

// Runs the setup
func (s *TemplatesSetup) Run(ctx context.Context) error {
	var errors []error
	for _, template := range s.Templates {
		if err := s.putTemplate(ctx, &template); err != nil {
			errors = append(errors, err)
		}
	}
	if len(errors) != 0 {
		return PutTemplateErrors{Errors: errors}
	} else {
		return nil
	}
}

// Checks if the current TemplatesSetup was run.
//
// This is currently a shallow check for template presence only.
func (s *TemplatesSetup) Check(ctx context.Context) error {
	indexTemplateNames := make([]string, 0, len(s.Templates))
	for _, t := range s.Templates {
		indexTemplateNames = append(indexTemplateNames, string(t.Name()))
	}

	indexTemplatesGetReq := esapi.IndicesGetTemplateRequest{Name: indexTemplateNames}

	rawResp, err := indexTemplatesGetReq.Do(ctx, s.esClient)
	if err != nil {
		return common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	switch rawResp.StatusCode {
	case 200:
		var mappings map[string]interface{}
		if err = json.NewDecoder(rawResp.Body).Decode(&mappings); err != nil {
			return common.JsonSerdesErr{Underlying: []error{err}}
		}
		var notPresent []string
		for _, name := range indexTemplateNames {
			if _, ok := mappings[name]; !ok {
				notPresent = append(notPresent, name)
			}
		}
		if len(notPresent) != 0 {
			return TemplatesNotInstalled{NotInstalled: notPresent}
		} else {
			return nil
		}
	case 404:
		return TemplatesNotInstalled{NotInstalled: indexTemplateNames}
	default:
		return common.UnexpectedEsStatusError(rawResp)
	}
}

func (s *TemplatesSetup) putTemplate(ctx context.Context, t *Template) error {
	asBytes, err := json.Marshal(t)
	log.Info().RawJSON("body", asBytes).Str("template_name", string(t.name)).Msg("Applying template")
	if err != nil {
		return common.JsonSerdesErr{Underlying: []error{err}}
	}
	putTemplateReq := esapi.IndicesPutTemplateRequest{
		Body: bytes.NewReader(asBytes),
		Name: string(t.name),
	}
	rawResp, err := putTemplateReq.Do(ctx, s.esClient)
	if err != nil {
		return common.ElasticsearchErr{Underlying: err}
	}
	defer rawResp.Body.Close()
	switch rawResp.StatusCode {
	case 200:
		return nil
	default:
		return common.UnexpectedEsStatusError(rawResp)
	}
}

type PutTemplateErrors struct {
	Errors []error
}

func (e PutTemplateErrors) Error() string {
	return fmt.Sprintf("Errors encountered [%v]", e.Errors)
}

type TemplatesNotInstalled struct {
	NotInstalled []string
}

func (t TemplatesNotInstalled) Error() string {
	return fmt.Sprintf("One or more app index templates were not installed. Please run the setup command to install them [%v]", t.NotInstalled)
}

// Templates

var metadataProperties = Json{
	"properties": Json{
		"created_at": Json{
			"type": "date",
		},
		"modified_at": Json{
			"type": "date",
		},
	},
}

// Content entries. The rating leaderboard sorts on votes.elo and the
// matchmaker filters on user_id, so both need proper mappings; the payload
// itself stays unindexed.
var ContentTemplate = NewTemplate(
	"duelboard_content_index_template",
	[]Pattern{Pattern(esContent.IndexName)},
	Mappings{
		"_source": Json{
			"enabled": true,
		},
		"dynamic": true, // We use persistence models anyways, so we can make sure mappings don't get out of hand
		"properties": Json{
			"user_id": Json{
				"type": "keyword",
			},
			"contest_id": Json{
				"type": "keyword",
			},
			"content": Json{
				"properties": Json{
					"data": Json{
						"type":  "text",
						"index": false, // free-form submissions don't get indexed to prevent explosions
					},
					"type": Json{
						"type": "keyword",
					},
					"url": Json{
						"type":  "keyword",
						"index": false,
					},
				},
			},
			"votes": Json{
				"properties": Json{
					"total": Json{
						"type": "long",
					},
					"up": Json{
						"type": "long",
					},
					"down": Json{
						"type": "long",
					},
					"elo": Json{
						"type": "double",
					},
				},
			},
			"metadata": metadataProperties,
		},
	},
)

// Vote events. One template covers the live and archive indices; the
// archiver moves documents between them verbatim.
var VoteEventsTemplate = NewTemplate(
	"duelboard_votes_index_template",
	[]Pattern{Pattern(esVote.IndexName), Pattern(esVote.ArchiveIndexName)},
	Mappings{
		"_source": Json{
			"enabled": true,
		},
		"dynamic": true,
		"properties": Json{
			"voter_id": Json{
				"type": "keyword",
			},
			"winner_id": Json{
				"type": "keyword",
			},
			"loser_id": Json{
				"type": "keyword",
			},
			"created_at": Json{
				"type": "date",
			},
		},
	},
)

var UsersTemplate = NewTemplate(
	"duelboard_users_index_template",
	[]Pattern{Pattern(esUser.IndexName)},
	Mappings{
		"_source": Json{
			"enabled": true,
		},
		"dynamic": true,
		"properties": Json{
			"name": Json{
				"type": "keyword",
			},
			"metadata": metadataProperties,
		},
	},
)

var ContestsTemplate = NewTemplate(
	"duelboard_contests_index_template",
	[]Pattern{Pattern(contest.IndexName)},
	Mappings{
		"_source": Json{
			"enabled": true,
		},
		"dynamic": true,
		"properties": Json{
			"title": Json{
				"type": "text",
				"fields": Json{
					"keyword": Json{
						"type":         "keyword",
						"ignore_above": 256,
					},
				},
			},
			"start": Json{
				"type": "date",
			},
			"end": Json{
				"type": "date",
			},
			"current": Json{
				"type": "boolean",
			},
			"metadata": metadataProperties,
		},
	},
)
