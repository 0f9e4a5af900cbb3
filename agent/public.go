package agent

import (
	"context"
	"strings"

	"github.com/etnz/fonda"
	"github.com/etnz/fonda/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand the fundamentals of listed companies:
			whether the business is healthy, how it compares to peers, and what a sensible
			entry price would be. He gives company names, not tickers.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			Always get the numbers from the Analyst before concluding anything; never invent a ratio.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarkets returns the search-grounded expert for recent news and context
// the statements cannot show.
func NewMarkets() *Expert {
	return &Expert{
		Name: "Markets",
		Description: `This is an expert of financial markets,
		very well aware of all the financial products and institutions,
		about the latest news about the different companies and sectors.
		Ask Markets whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert wired to the analysis pipeline. It is the
// only expert that can produce actual ratios, ratings and valuations.
func NewAnalyst(resolver *fonda.Resolver, fetcher fonda.SnapshotFetcher) *Expert {

	lib := []Function{analyzeFunc(resolver, fetcher)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the fundamental Analyst. He runs the full analysis of a company:
		ticker resolution, financial statements, ratios, qualitative ratings, valuation and
		an optional peer comparison. Ask him whenever the user needs numbers about a company.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a fundamental analyst. You know how to use the Tools to produce the
				full analysis report of any listed company: ratios, ratings against its
				sector profile, intrinsic value and entry price.

				Quote figures from the report verbatim, never recompute or round them yourself.
				When a ratio reads "n/a" say the data is unavailable instead of guessing.
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

// analyzeFunc exposes the analysis pipeline as a callable tool.
func analyzeFunc(resolver *fonda.Resolver, fetcher fonda.SnapshotFetcher) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Analyze",
			Description: `Analyze runs the full fundamental analysis of one company:
			ratios, ratings, global score, valuation and entry price.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"company": {
						Type:        genai.TypeString,
						Description: "The company name or ticker, e.g. \"Air Liquide\" or \"AAPL\".",
					},
					"peers": {
						Type:        genai.TypeString,
						Description: "Optional comma-separated peer tickers to compare multiples against.",
					},
				},
				Required: []string{"company"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The markdown-formatted analysis report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fail := func(err error) *genai.FunctionResponse {
				return &genai.FunctionResponse{
					ID: id, Name: "Analyze",
					Response: map[string]any{"error": err.Error()},
				}
			}

			company, ok := args["company"].(string)
			if !ok || strings.TrimSpace(company) == "" {
				return &genai.FunctionResponse{
					ID: id, Name: "Analyze",
					Response: map[string]any{"error": "argument 'company' must be a non-empty string"},
				}
			}

			var opts fonda.Options
			if peers, ok := args["peers"].(string); ok && peers != "" {
				for _, p := range strings.Split(peers, ",") {
					if p = strings.TrimSpace(p); p != "" {
						opts.Peers = append(opts.Peers, strings.ToUpper(p))
					}
				}
			}

			report, err := fonda.Analyze(resolver, fetcher, company, opts)
			if err != nil {
				return fail(err)
			}

			return &genai.FunctionResponse{
				ID: id, Name: "Analyze",
				Response: map[string]any{
					"output": renderer.RenderReport(renderer.NewReport(report)),
				},
			}
		},
	}
}
