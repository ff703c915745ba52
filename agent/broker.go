package agent

import (
	"context"

	"google.golang.org/genai"
)

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// NewAnalyst returns the market analyst expert, grounded by Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst,
		very well aware of financial products, companies and institutions,
		and of the latest news about them.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related
			to financial institutions, companies, markets and funds. You leverage Google
			Search to ground your assertions, and you know how to relate the latest news
			to the user's request.
				`}}},
		},
	}
}

// Account gives the broker expert live read access to the user's TradeX
// data, each report already rendered as markdown. The cmd package provides
// the implementation over the gateway.
type Account interface {
	Portfolio(ctx context.Context) (string, error)
	Watchlist(ctx context.Context) (string, error)
	Transactions(ctx context.Context) (string, error)
}

// NewBroker returns the broker expert: the one with access to the user's
// account.
func NewBroker(acct Account) *Expert {
	lib := []Function{
		report("Portfolio",
			`Portfolio lists the user's held positions with entry price, quantity, side
			(BUY or SELL), current converted price and unrealized profit and loss, plus
			the portfolio totals.`,
			acct.Portfolio),
		report("Watchlist",
			`Watchlist lists the symbols the user watches without holding.`,
			acct.Watchlist),
		report("Transactions",
			`Transactions lists the user's account history: every buy, sell and close.`,
			acct.Transactions),
	}

	return &Expert{
		Name: "Broker",
		Description: `This is the user's Broker. It reads the user's live TradeX account:
		held positions with their profit and loss, the watchlist, and the transaction
		history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: declarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the user's broker on the TradeX paper-trading platform. Use the
				available tools to read the user's live account: positions, watchlist and
				transaction history. All figures are in INR. Answer your teammates'
				questions about the user's account from the tools, never from memory.
			`}}},
		},
		library: newLibrary(lib),
	}
}

// report wraps a markdown-producing account call into a parameterless
// function tool.
func report(name, description string, f func(ctx context.Context) (string, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
			out, err := f(ctx)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = out
			return fresp
		},
	}
}
