package agent

import (
	"context"
	"sort"
	"strings"

	"chartdata"
	"chartdata/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is a financial advisor asking about the chart datasets stored for their clients:
			budgets, daily account balances and transaction ledgers.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. Answer with concrete figures taken from the expert's data, never invent them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert that can read the stored client datasets.
func NewAnalyst(store *chartdata.Store, currency string) *Expert {
	lib := []Function{listClientsFunc(store), showDatasetFunc(store, currency)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the data analyst. He has read access to every client's stored chart
		datasets: budget breakdowns, daily account balances and transaction ledgers.
		Ask the Analyst whenever you need actual figures from a client's data.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a data analyst with read access to the stored client chart datasets.
				Use the available tools to list clients and read their datasets as markdown
				summaries. Quote figures exactly as the tools report them.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func listClientsFunc(store *chartdata.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ListClients",
			Description: `ListClients lists every known client id and the names of the datasets stored for each.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown list of client ids with their dataset names and chart types.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			for _, cid := range store.Clients() {
				c, _ := store.Client(cid)
				b.WriteString("- " + cid + "\n")
				for _, name := range sortedDatasetNames(c) {
					b.WriteString("  - " + name + " (" + c.Datasets[name].ChartType.String() + ")\n")
				}
			}
			if b.Len() == 0 {
				b.WriteString("no clients stored")
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "ListClients",
				Response: map[string]any{"output": b.String()},
			}
		},
	}
}

func showDatasetFunc(store *chartdata.Store, currency string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ShowDataset",
			Description: `ShowDataset renders one client dataset as a markdown summary with all its figures.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"client": {
						Type:        genai.TypeString,
						Description: "The client id, as reported by ListClients.",
					},
					"dataset": {
						Type:        genai.TypeString,
						Description: "The dataset name, as reported by ListClients.",
					},
				},
				Required: []string{"client", "dataset"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the dataset.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "ShowDataset", Response: map[string]any{}}
			client, _ := args["client"].(string)
			name, _ := args["dataset"].(string)
			ds, err := store.Dataset(client, name)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = renderer.RenderDataset(name, ds, currency)
			return fresp
		},
	}
}

func sortedDatasetNames(c *chartdata.Client) []string {
	names := make([]string, 0, len(c.Datasets))
	for name := range c.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
