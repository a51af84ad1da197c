package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/marc-transform/institution"
	"github.com/lehigh-university-libraries/marc-transform/marc"
	"github.com/lehigh-university-libraries/marc-transform/nametype"
	"github.com/lehigh-university-libraries/marc-transform/normalize"
	"github.com/lehigh-university-libraries/marc-transform/rules"
	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

var (
	inputFile           string
	outputFile          string
	baseURL             string
	redisAddr           string
	cacheTTL            time.Duration
	lexiconsFile        string
	issueExceptionsFile string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform harvested records into metadata documents",
	Long: `Transform reads harvested records as JSON lines and writes one
metadata document per line.

Each input line holds {"record": {...}, "context": {...}} as produced by
the harvester. Records that hard-fail are logged with their OAI
identifier and skipped; the batch continues.

Input defaults to stdin, output defaults to stdout.

Examples:
  # stdin to stdout
  cat records.jsonl | marc-transform transform --base-url https://repo.example.org

  # Explicit files, shared Redis cache
  marc-transform transform -i records.jsonl -o out.jsonl \
    --base-url https://repo.example.org --redis localhost:6379`,
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	transformCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	transformCmd.Flags().StringVar(&baseURL, "base-url", "", "Vocabulary service base URL (required)")
	transformCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared vocabulary cache (default: in-process cache)")
	transformCmd.Flags().DurationVar(&cacheTTL, "ttl", vocab.DefaultTTL, "Vocabulary cache TTL")
	transformCmd.Flags().StringVar(&lexiconsFile, "lexicons", "", "Name-type lexicons YAML file (default: built-in)")
	transformCmd.Flags().StringVar(&issueExceptionsFile, "issue-exceptions", "", "Item-issue exceptions YAML file (default: built-in)")
	if err := transformCmd.MarkFlagRequired("base-url"); err != nil {
		panic(err)
	}
}

func runTransform(cmd *cobra.Command, args []string) (err error) {
	var input io.Reader
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	} else {
		input = os.Stdin
	}

	var output io.Writer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	transformer, err := buildTransformer()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	src := marc.NewJSONSource(input)
	enc := json.NewEncoder(output)
	var transformed, failed int
	for {
		rec, rc, err := src.Next()
		if errors.Is(err, marc.ErrDone) {
			break
		}
		if err != nil {
			return err
		}

		d, err := transformer.Transform(ctx, rec, rc)
		if err != nil {
			var terr *rules.TransformError
			if errors.As(err, &terr) {
				slog.Error("record failed", "oai", terr.OAIIdentifier, "error", terr.Err)
				failed++
				continue
			}
			return err
		}
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
		transformed++
	}

	slog.Info("transform finished", "transformed", transformed, "failed", failed)
	return nil
}

func buildTransformer() (*rules.Transformer, error) {
	var cache vocab.Cache
	if redisAddr != "" {
		cache = vocab.NewRedisCache(redis.NewClient(&redis.Options{Addr: redisAddr}))
	} else {
		cache = vocab.NewMemoryCache(cacheTTL)
	}
	gw := vocab.NewGateway(vocab.NewClient(baseURL), cache, cacheTTL)
	resolver := institution.NewResolver(gw)

	var lex nametype.Lexicons
	var err error
	if lexiconsFile != "" {
		data, rerr := os.ReadFile(lexiconsFile)
		if rerr != nil {
			return nil, fmt.Errorf("reading lexicons file: %w", rerr)
		}
		lex, err = nametype.LoadLexicons(data)
	} else {
		lex, err = nametype.DefaultLexicons()
	}
	if err != nil {
		return nil, err
	}
	classifier := nametype.NewClassifier(gw, resolver, lex)

	exceptions := normalize.DefaultIssueExceptions()
	if issueExceptionsFile != "" {
		exceptions, err = normalize.LoadIssueExceptions(issueExceptionsFile)
		if err != nil {
			return nil, err
		}
	}

	return rules.NewTransformer(gw, resolver, classifier, exceptions), nil
}
