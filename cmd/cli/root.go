package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clickup-task-bot/config"
	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/repository/clickup"
	"clickup-task-bot/internal/task/usecase"
	"clickup-task-bot/pkg/log"
)

// useCaseFactory builds the pipeline lazily so --help never needs a config file.
type useCaseFactory func() (task.UseCase, error)

func newRootCmd(newUC useCaseFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "clickup-task",
		Short:         "Create ClickUp tasks from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPingCmd(newUC), newCreateCmd(newUC))
	return root
}

func newUseCaseFromConfig() (task.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	client := clickup.NewClient(clickup.ClientOptions{
		BaseURL:  cfg.ClickUp.APIURL,
		Token:    cfg.ClickUp.Token,
		AuthMode: cfg.ClickUp.AuthMode,
		Timeout:  cfg.ClickUp.Timeout,
	})
	return usecase.New(logger, clickup.New(client, logger), cfg.ClickUp.DefaultTeam), nil
}

// exitError carries a non-zero exit code after the command already printed its reply.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }
func (e exitError) ExitCode() int { return e.code }
