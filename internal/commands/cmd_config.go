package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command group to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the effective configuration",
				UsageText:   "todo config validate",
				Description: "Validates the configuration, including that the store paths can be used as files.",
				Action:      cmd.runValidate,
			},
			{
				Name:        "show",
				Usage:       "Print the effective configuration as YAML",
				UsageText:   "todo config show",
				Description: "Prints the configuration after defaults and flag overrides are applied.",
				Action:      cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	err := cmd.flags.Config.ValidateDeep()
	if err == nil {
		_, _ = fmt.Fprintln(out, "Configuration is valid")
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		_, _ = fmt.Fprintf(out, "  %s: %v\n", fe.Field, fe.Err)
	}
	_, _ = fmt.Fprintln(out)

	return cli.Exit(fmt.Sprintf("%d error(s) found", len(fieldErrs)), 1)
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	data, err := cmd.flags.Config.Marshal()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = c.Root().Writer.Write(data)
	return err
}
