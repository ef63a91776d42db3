package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/eshaffer321/ynab-go/pkg/ynab"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// stdout carries the MCP protocol, so all logging goes to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	token := os.Getenv("YNAB_ACCESS_TOKEN")
	if token == "" {
		logger.Error("YNAB_ACCESS_TOKEN environment variable is required")
		os.Exit(1)
	}

	client, err := ynab.NewClient(&ynab.ClientOptions{
		Token:     token,
		BaseURL:   os.Getenv("YNAB_API_URL"),
		SentryDSN: os.Getenv("SENTRY_DSN"),
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to initialize YNAB client", "error", err)
		os.Exit(1)
	}

	// Create MCP server with v1.0.0 API
	impl := &mcp.Implementation{
		Name:    "ynab",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	// Register all tools
	registerTools(server, client)

	// Run server over stdio transport (for Claude Desktop)
	runErr := server.Run(context.Background(), &mcp.StdioTransport{})

	// Flush pending Sentry events before exiting
	client.Close()

	if runErr != nil {
		logger.Error("server error", "error", runErr)
		os.Exit(1)
	}
}

func registerTools(server *mcp.Server, client *ynab.Client) {
	// Create tools instance with client
	tools := &ynabTools{client: client}

	// Budgets and accounts
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_budgets",
		Description: "List all budgets the access token can reach, including currency formatting. Budget IDs returned here are accepted by every other tool; 'last-used' always refers to the most recently used budget.",
	}, tools.ListBudgets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_accounts",
		Description: "Get all accounts for a budget with their current balances in currency units. Deleted accounts are excluded; closed accounts are included and marked.",
	}, tools.ListAccounts)

	// Categories
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "Get all budget categories organized by category group, with budgeted, activity, and balance amounts. Hidden and deleted categories are excluded unless include_hidden is set.",
	}, tools.ListCategories)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_category",
		Description: "Get a single category including its goal details (goal type, target, target month, and percentage complete).",
	}, tools.GetCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_category_budget",
		Description: "Set the budgeted amount for a category in a specific month. Returns the updated category.",
	}, tools.UpdateCategoryBudget)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_category",
		Description: "Update attributes of a category: name, note, category group, or goal target. Only the provided fields are changed; at least one must be given.",
	}, tools.UpdateCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_category_funds",
		Description: "Move budgeted funds from one category to another within a month. Returns both categories with their updated budgeted amounts.",
	}, tools.MoveCategoryFunds)

	// Months
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_month_summary",
		Description: "Get a budget month overview: income, to-be-budgeted, summed budgeted/activity/balance totals, and every category's amounts for that month with group names. Use 'current' for the current month.",
	}, tools.GetMonthSummary)

	// Transactions
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_transactions",
		Description: "Query transactions with optional date range, account, and category filters. Results are paginated; amounts are decimal currency units, negative for outflows.",
	}, tools.ListTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_transactions",
		Description: "Search transactions by payee name or memo substring (case-insensitive), with an optional date range and result limit.",
	}, tools.SearchTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_transaction",
		Description: "Create a new transaction. Amount is in currency units (negative for outflows, e.g. -12.50); cleared defaults to uncleared and approved to false.",
	}, tools.CreateTransaction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_transaction",
		Description: "Update fields of an existing transaction. Unspecified fields keep their current values.",
	}, tools.UpdateTransaction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_unapproved_transactions",
		Description: "Get all transactions awaiting approval in a budget.",
	}, tools.GetUnapprovedTransactions)

	// Spending analysis
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_category_spending_summary",
		Description: "Summarize spending in one category over a date range: total spent, transaction count, average per month, a month-by-month breakdown, and an optional text chart.",
	}, tools.GetCategorySpendingSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_spending_by_year",
		Description: "Compare spending in one category across calendar years, with year-over-year change and percent change, and an optional text chart of the yearly totals.",
	}, tools.CompareSpendingByYear)

	// Scheduled transactions
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_scheduled_transactions",
		Description: "Get all scheduled (recurring) transactions for a budget with their frequency and next occurrence date.",
	}, tools.ListScheduledTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_scheduled_transaction",
		Description: "Create a scheduled transaction. The date must be today or in the future; frequency is one of the YNAB recurrence values (e.g. monthly, everyOtherWeek, yearly).",
	}, tools.CreateScheduledTransaction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_scheduled_transaction",
		Description: "Delete a scheduled transaction. Returns the deleted entity as confirmation.",
	}, tools.DeleteScheduledTransaction)
}
