// Command faqdex-cli answers questions interactively from a local QA file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdex/internal/domain/corpus"
	logpkg "github.com/kailas-cloud/faqdex/internal/logger"
	"github.com/kailas-cloud/faqdex/internal/repository/qafile"
	answeruc "github.com/kailas-cloud/faqdex/internal/usecase/answer"
)

func main() {
	var (
		file      = flag.String("file", "qa_data.json", "path to the QA JSON file")
		threshold = flag.Float64("threshold", answeruc.DefaultThreshold, "similarity cut-off for a confident answer")
	)
	flag.Parse()

	logger, err := logpkg.NewLogger("local", "warn")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)

	pairs, err := qafile.New(*file).Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load QA pairs:", err)
		os.Exit(1)
	}

	c, err := corpus.Build(pairs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build corpus:", err)
		os.Exit(1)
	}

	svc := answeruc.New(c, *threshold)

	fmt.Println("Welcome to the faqdex support agent!")
	fmt.Println("Ask a question (type 'exit' to quit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(input, "exit") {
			fmt.Println("Thank you for using the faqdex support agent. Goodbye!")
			return
		}

		resp := svc.Answer(ctx, input)
		fmt.Println(resp.Text())
	}

	if err := scanner.Err(); err != nil {
		logger.Error("stdin read error", zap.Error(err))
		os.Exit(1)
	}
	// EOF without "exit" — still say goodbye.
	fmt.Println()
	fmt.Println("Thank you for using the faqdex support agent. Goodbye!")
}
