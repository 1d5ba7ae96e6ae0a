package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"golang-trading-insights/internal/insights/presenter"
	"golang-trading-insights/internal/insights/service"

	"github.com/spf13/cobra"
)

func botCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Shows bot telemetry",
	}

	var symbol string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Shows every running bot, or the one trading --symbol",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if symbol != "" {
				result := a.bots.BotStatusBySymbol(cmd.Context(), symbol)
				if result.IsError() {
					return errors.New(result.Message)
				}
				return printJSON(cmd.OutOrStdout(), result.Data)
			}

			result := a.bots.AllBotStatus(cmd.Context())
			if result.IsError() {
				return errors.New(result.Message)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tBOT\tRUNNING\tKILL SWITCH\tLAST SIGNAL")
			for _, b := range result.Data.Bots {
				last := "-"
				if b.LastSignalType != nil {
					last = *b.LastSignalType
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%s\n", b.SessionID, b.DisplayName(), b.IsRunning, b.KillSwitchActive, last)
			}
			return w.Flush()
		},
	}
	statusCmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Only the bot trading this symbol")
	cmd.AddCommand(statusCmd)

	var session string
	insightsCmd := &cobra.Command{
		Use:   "insights",
		Short: "Shows status, performance, recent trades and equity together",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p := presenter.NewBotInsightsPresenter(cmd.Context(), a.bots, a.logger)
			defer p.Close()
			p.Load()
			p.Wait()
			if session != "" {
				if err := p.SelectBot(session); err != nil {
					return err
				}
			}

			state := p.State().Value()
			if state.Insights.IsError() {
				return errors.New(state.Insights.Message)
			}
			return printJSON(cmd.OutOrStdout(), state.Insights.Data)
		},
	}
	insightsCmd.Flags().StringVar(&session, "session", "", "Select this bot session")
	cmd.AddCommand(insightsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Shows the bot configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return printResult(cmd, a.bots.Config(cmd.Context()))
		},
	})
	return cmd
}

func printResult[T any](cmd *cobra.Command, r service.Result[T]) error {
	if r.IsError() {
		return errors.New(r.Message)
	}
	return printJSON(cmd.OutOrStdout(), r.Data)
}
