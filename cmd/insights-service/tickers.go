package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"golang-trading-insights/internal/entity"
	"golang-trading-insights/internal/insights/presenter"

	"github.com/spf13/cobra"
)

func tickersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickers",
		Short: "Lists, adds, inspects and removes tracked tickers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lists tracked tickers with their sentiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p := presenter.NewDashboardPresenter(cmd.Context(), a.trading, a.logger)
			defer p.Close()
			p.LoadTickersContext(cmd.Context())

			state := p.State().Value()
			if state.Error != "" {
				return errors.New(state.Error)
			}
			printTickers(cmd, state.Tickers)
			return nil
		},
	})

	var name string
	addCmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Starts tracking a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p := presenter.NewAddTickerPresenter(cmd.Context(), a.trading, a.logger)
			defer p.Close()
			p.UpdateTicker(args[0])
			p.UpdateName(name)
			if p.AddTicker() {
				p.Wait()
			}

			state := p.State().Value()
			if state.Error != "" {
				return errors.New(state.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", state.Ticker)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Company name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <symbol>",
		Short: "Stops tracking a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			result := a.trading.RemoveTicker(cmd.Context(), args[0])
			if result.IsError() {
				return errors.New(result.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	})

	var fetch, analyze bool
	showCmd := &cobra.Command{
		Use:   "show <symbol>",
		Short: "Shows a ticker with its news and the upstream API status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			p := presenter.NewTickerDetailPresenter(cmd.Context(), a.trading, a.logger)
			defer p.Close()
			switch {
			case fetch:
				p.FetchNews(args[0])
			case analyze:
				p.AnalyzeNews(args[0])
			default:
				p.Load(args[0])
			}
			p.Wait()

			state := p.State().Value()
			if state.Error != "" {
				return errors.New(state.Error)
			}
			return printJSON(cmd.OutOrStdout(), state)
		},
	}
	showCmd.Flags().BoolVar(&fetch, "fetch", false, "Trigger a news fetch before showing")
	showCmd.Flags().BoolVar(&analyze, "analyze", false, "Trigger analysis of pending news before showing")
	cmd.AddCommand(showCmd)

	return cmd
}

func printTickers(cmd *cobra.Command, tickers []entity.Ticker) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKER\tNAME\tSENTIMENT\tSIGNAL\tTREND")
	for _, t := range tickers {
		name := "-"
		if t.Name != nil {
			name = *t.Name
		}
		level, signal, trend := "-", "-", "-"
		if t.Sentiment != nil {
			level = string(t.Sentiment.Level())
			signal = string(entity.SignalFrom(t.Sentiment.Signal))
			trend = string(t.Sentiment.Trend())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Ticker, name, level, signal, trend)
	}
	_ = w.Flush()
}
