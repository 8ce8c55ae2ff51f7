package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/pipeboard/pkg/domain/interfaces"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/repository"
	"github.com/m-mizutani/pipeboard/pkg/repository/jira"
	"github.com/m-mizutani/pipeboard/pkg/repository/memory"
	"github.com/m-mizutani/pipeboard/pkg/repository/monday"
)

type Board struct {
	backend     string
	columnsPath string
	nameLimit   int64

	mondayToken   types.BoardAPIToken `masq:"secret"`
	mondayURL     string
	mondayBoardID string

	jiraURL       string
	jiraUser      string
	jiraToken     types.BoardAPIToken `masq:"secret"`
	jiraProject   string
	jiraIssueType string
}

func (x *Board) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "board-backend",
			Usage:       "Board backend [monday|jira|memory]",
			Category:    "Board",
			Destination: &x.backend,
			Sources:     cli.EnvVars("PIPEBOARD_BOARD_BACKEND"),
			Value:       string(types.BoardBackendMonday),
		},
		&cli.StringFlag{
			Name:        "board-columns",
			Usage:       "YAML file mapping column keys to board column IDs",
			Category:    "Board",
			Destination: &x.columnsPath,
			Sources:     cli.EnvVars("PIPEBOARD_BOARD_COLUMNS"),
		},
		&cli.Int64Flag{
			Name:        "board-name-limit",
			Usage:       "Maximum length of board item names",
			Category:    "Board",
			Destination: &x.nameLimit,
			Sources:     cli.EnvVars("PIPEBOARD_BOARD_NAME_LIMIT"),
			Value:       200,
		},
		&cli.StringFlag{
			Name:        "monday-api-token",
			Usage:       "monday.com API token",
			Category:    "Board",
			Destination: (*string)(&x.mondayToken),
			Sources:     cli.EnvVars("PIPEBOARD_MONDAY_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "monday-api-url",
			Usage:       "monday.com GraphQL endpoint",
			Category:    "Board",
			Destination: &x.mondayURL,
			Sources:     cli.EnvVars("PIPEBOARD_MONDAY_API_URL"),
		},
		&cli.StringFlag{
			Name:        "monday-board-id",
			Usage:       "monday.com board ID",
			Category:    "Board",
			Destination: &x.mondayBoardID,
			Sources:     cli.EnvVars("PIPEBOARD_MONDAY_BOARD_ID"),
		},
		&cli.StringFlag{
			Name:        "jira-url",
			Usage:       "Jira base URL, e.g. https://example.atlassian.net",
			Category:    "Board",
			Destination: &x.jiraURL,
			Sources:     cli.EnvVars("PIPEBOARD_JIRA_URL"),
		},
		&cli.StringFlag{
			Name:        "jira-user",
			Usage:       "Jira user (email)",
			Category:    "Board",
			Destination: &x.jiraUser,
			Sources:     cli.EnvVars("PIPEBOARD_JIRA_USER"),
		},
		&cli.StringFlag{
			Name:        "jira-api-token",
			Usage:       "Jira API token",
			Category:    "Board",
			Destination: (*string)(&x.jiraToken),
			Sources:     cli.EnvVars("PIPEBOARD_JIRA_API_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "jira-project",
			Usage:       "Jira project key of board items",
			Category:    "Board",
			Destination: &x.jiraProject,
			Sources:     cli.EnvVars("PIPEBOARD_JIRA_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "jira-issue-type",
			Usage:       "Jira issue type of new items",
			Category:    "Board",
			Destination: &x.jiraIssueType,
			Sources:     cli.EnvVars("PIPEBOARD_JIRA_ISSUE_TYPE"),
			Value:       "Task",
		},
	}
}

func (x Board) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Backend", x.backend),
		slog.String("Columns", x.columnsPath),
		slog.Int64("NameLimit", x.nameLimit),
		slog.String("MondayURL", x.mondayURL),
		slog.String("MondayBoardID", x.mondayBoardID),
		slog.Int("mondayToken.len", len(x.mondayToken)),
		slog.String("JiraURL", x.jiraURL),
		slog.String("JiraUser", x.jiraUser),
		slog.String("JiraProject", x.jiraProject),
		slog.Int("jiraToken.len", len(x.jiraToken)),
	)
}

func (x Board) NameLimit() int {
	return int(x.nameLimit)
}

func (x Board) columns() (repository.ColumnMap, error) {
	if x.columnsPath == "" {
		return repository.ColumnMap{}, nil
	}

	fd, err := os.Open(x.columnsPath)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to open board column map",
			goerr.V("path", x.columnsPath),
		)
	}
	defer fd.Close()

	columns, err := repository.LoadColumnMap(fd)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid board column map", goerr.V("path", x.columnsPath))
	}
	return columns, nil
}

// New builds the board of the selected backend.
func (x Board) New() (interfaces.Board, error) {
	if x.nameLimit <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "board name limit must be positive", goerr.V("limit", x.nameLimit))
	}

	columns, err := x.columns()
	if err != nil {
		return nil, err
	}

	switch types.BoardBackend(x.backend) {
	case types.BoardBackendMonday:
		if x.mondayToken == "" || x.mondayBoardID == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "monday-api-token and monday-board-id are required for monday backend")
		}
		options := []monday.Option{monday.WithColumnMap(columns)}
		if x.mondayURL != "" {
			options = append(options, monday.WithEndpoint(x.mondayURL))
		}
		board, err := monday.New(x.mondayToken, types.BoardID(x.mondayBoardID), options...)
		if err != nil {
			return nil, err
		}
		return board, nil

	case types.BoardBackendJira:
		if x.jiraUser == "" || x.jiraToken == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "jira-user and jira-api-token are required for jira backend")
		}
		options := []jira.Option{jira.WithColumnMap(columns)}
		if x.jiraIssueType != "" {
			options = append(options, jira.WithIssueType(x.jiraIssueType))
		}
		board, err := jira.New(x.jiraURL, x.jiraUser, x.jiraToken, x.jiraProject, options...)
		if err != nil {
			return nil, err
		}
		return board, nil

	case types.BoardBackendMemory:
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown board backend", goerr.V("backend", x.backend))
	}
}
