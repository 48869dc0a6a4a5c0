package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"signaltrader/src/analyzer"
	"signaltrader/src/llm"
	"signaltrader/src/model"
	"signaltrader/src/server"
	"signaltrader/src/trading"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "signaltrader CMD"
	app.Usage = "The signaltrader command line interface"

	app.Commands = []cli.Command{
		serveCMD,
		analyzeCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	serveCMD = cli.Command{
		Name:        "serve",
		Usage:       "run the notification server",
		Action:      serveAction,
		ArgsUsage:   "",
		Flags:       []cli.Flag{},
		Description: `Run the trade decision engine HTTP server`,
	}
	analyzeCMD = cli.Command{
		Name:      "analyze",
		Usage:     "analyze one payload without trading",
		Action:    analyzeAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "type",
				Usage: "payload type: web-monitor or social",
				Value: model.PayloadTypeWebMonitor,
			},
			cli.StringFlag{
				Name:  "file",
				Usage: "file holding the notification content",
			},
		},
		Description: `Run one payload through the analysis pipeline and print the outcome and the resolved order as JSON. Never touches the exchange.`,
	}
)

func serveAction(_ *cli.Context) error {
	logrus.Info("Starting server CMD")

	router, err := server.Bootstrap()
	if err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}

	server.StartServer(server.GetConfig().Port, router)
	return nil
}

func analyzeAction(c *cli.Context) error {
	logrus.Info("Starting analyze CMD")

	path := c.String("file")
	if path == "" {
		return fmt.Errorf("--file is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content file: %w", err)
	}

	completer, err := llm.NewClient(llm.GetConfig())
	if err != nil {
		return fmt.Errorf("initialize llm client: %w", err)
	}

	var channelAnalyzer analyzer.Analyzer
	switch c.String("type") {
	case model.PayloadTypeWebMonitor:
		expectation, err := model.LoadFEDExpectation(analyzer.GetConfig().ExpectationsFile)
		if err != nil {
			return err
		}
		channelAnalyzer, err = analyzer.NewFEDDecisionAnalyzer(completer, expectation)
		if err != nil {
			return err
		}
	case model.PayloadTypeSocial:
		channelAnalyzer = analyzer.NewSocialMediaAnalyzer(completer)
	default:
		return fmt.Errorf("unknown payload type %q", c.String("type"))
	}

	result := channelAnalyzer.Analyze(context.Background(), string(content), "analyze-cmd")

	output := struct {
		Analysis model.AnalysisResult `json:"analysis"`
		Order    *model.TradeOrder    `json:"order,omitempty"`
	}{Analysis: result}

	if result.Outcome == model.OutcomeSignal {
		output.Order = trading.ParamsFromConfig(trading.GetConfig()).Resolve(result.Signal)
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
