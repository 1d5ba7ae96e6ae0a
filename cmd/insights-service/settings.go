package main

import (
	"context"
	"errors"
	"fmt"

	"golang-trading-insights/internal/insights/presenter"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Shows or changes the trading API endpoint",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Prints the effective, default and override state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd.Context(), func(a *app, p *presenter.SettingsPresenter) error {
				return printJSON(cmd.OutOrStdout(), p.State().Value())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <url>",
		Short: "Overrides the trading API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd.Context(), func(a *app, p *presenter.SettingsPresenter) error {
				p.UpdateInputURL(args[0])
				if p.SaveURL() {
					p.Wait()
				}
				return reportSettings(cmd, a, p)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reverts to the compiled default base URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSettings(cmd.Context(), func(a *app, p *presenter.SettingsPresenter) error {
				if p.ResetToDefault() {
					p.Wait()
				}
				return reportSettings(cmd, a, p)
			})
		},
	})
	return cmd
}

func withSettings(ctx context.Context, fn func(a *app, p *presenter.SettingsPresenter) error) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	p := presenter.NewSettingsPresenter(ctx, a.settings, a.logger)
	defer p.Close()
	return fn(a, p)
}

func reportSettings(cmd *cobra.Command, a *app, p *presenter.SettingsPresenter) error {
	if msg := p.State().Value().Error; msg != "" {
		return errors.New(msg)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Trading API: %s\n", a.settings.EffectiveURL(cmd.Context()))
	return nil
}
