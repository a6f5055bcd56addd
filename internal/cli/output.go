package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/client"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/qa"

	"gopkg.in/yaml.v3"
)

// OutputFormat specifies the output format for CLI commands
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// PrintAnswer outputs a single answer in the specified format
func PrintAnswer(answer *qa.Answer, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(answer)
	case FormatYAML:
		return printYAML(answer)
	case FormatTable:
		return printAnswerTable(answer)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintVariants outputs the variant routing view in the specified format
func PrintVariants(view *client.VariantsView, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(view)
	case FormatYAML:
		return printYAML(view)
	case FormatTable:
		return printVariantsTable(view)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}

func printAnswerTable(answer *qa.Answer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Question", "Answer", "Variant")

	variant := answer.Variant
	if variant == "" {
		variant = "(none)"
	}
	table.Append(answer.Question, answer.Answer, variant)

	return table.Render()
}

func printVariantsTable(view *client.VariantsView) error {
	fmt.Printf("Flag: %s  Marker: %s\n", view.FlagKey, view.ModelMarker)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Variant", "Route", "Model")

	for _, v := range view.Variants {
		model := v.Model
		if model == "" {
			model = "-"
		}
		table.Append(v.Variant, v.Route, model)
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Fallback answer: %s\n", view.Fallback)
	return nil
}
