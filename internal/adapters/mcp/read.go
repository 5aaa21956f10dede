package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// clock is the time source of every tool
var clock = time.Now

// RegisterReadTools adds all read-only log tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.LogStore) {
	s.AddTool(readLogTool(), readLogHandler(store))
	s.AddTool(summaryTool(), summaryHandler(store))
	s.AddTool(listDaysTool(), listDaysHandler(store))
	s.AddTool(searchTool(), searchHandler(store))
	s.AddTool(checkTool(), checkHandler(store))
}

// RegisterIndexTools adds the link index tools. Only call it when the index opened.
func RegisterIndexTools(s *server.MCPServer, index ports.LinkIndex) {
	s.AddTool(backlinksTool(), backlinksHandler(index))
	s.AddTool(linksTool(), linksHandler(index))
}

func rangeOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("from",
			mcp.Description("Start date: today, yesterday, YYYY-MM-DD or MM-DD"),
		),
		mcp.WithString("to",
			mcp.Description("End date, same formats as from"),
		),
		mcp.WithBoolean("week",
			mcp.Description("Use the current week, Monday to Sunday"),
		),
		mcp.WithBoolean("month",
			mcp.Description("Use the current month"),
		),
	}
}

func rangeSpec(req mcp.CallToolRequest) commands.RangeSpec {
	return commands.RangeSpec{
		Date:  req.GetString("date", ""),
		From:  req.GetString("from", ""),
		To:    req.GetString("to", ""),
		Week:  req.GetBool("week", false),
		Month: req.GetBool("month", false),
	}
}

// --- read_log ---

func readLogTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Read daily log entries as raw Markdown. Without arguments reads today."),
		mcp.WithString("date",
			mcp.Description("Single day to read: today, yesterday, YYYY-MM-DD or MM-DD"),
		),
	}
	return mcp.NewTool("read_log", append(opts, rangeOptions()...)...)
}

func readLogHandler(store ports.LogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, end, err := rangeSpec(req).ResolveRead(clock())
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewReadRangeCommand(store, start, end).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// --- summary ---

func summaryTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Summarize the log over a period: logged days, item counts per category and linked notes. Defaults to the current week."),
	}
	return mcp.NewTool("summary", append(opts, rangeOptions()...)...)
}

func summaryHandler(store ports.LogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start, end, err := rangeSpec(req).ResolveSummary(clock())
		if err != nil {
			return toolError(err)
		}

		s, err := commands.NewSummaryCommand(store, start, end).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(s.Markdown()), nil
	}
}

// --- list_days ---

func listDaysTool() mcp.Tool {
	return mcp.NewTool("list_days",
		mcp.WithDescription("List the logged days of a year, newest first, with item counts per category."),
		mcp.WithNumber("year",
			mcp.Description("Year to list. Defaults to the current year."),
		),
	)
}

func listDaysHandler(store ports.LogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", clock().Year())

		days, err := commands.NewDaysCommand(store, year).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(days) == 0 {
			return mcp.NewToolResultText("No days logged."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "date        %s\n", strings.Join(categoryColumns(), "  "))
		for _, d := range days {
			fmt.Fprintf(&sb, "%s (%s)", d.Date, d.Weekday)
			for _, n := range d.Counts {
				fmt.Fprintf(&sb, "  %d", n)
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func categoryColumns() []string {
	cols := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		cols = append(cols, c.String())
	}
	return cols
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search the items of every year. Returns date, category and item."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
}

func searchHandler(store ports.LogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewSearchCommand(store, query)
		cmd.Limit = req.GetInt("limit", 20)
		hits, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(hits) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, h := range hits {
			fmt.Fprintf(&sb, "%s  %s  %s\n", h.Date, h.Category, h.Text)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- check ---

func checkTool() mcp.Tool {
	return mcp.NewTool("check",
		mcp.WithDescription("Check a year document for wrong weekday labels, missing category headings and misordered days."),
		mcp.WithNumber("year",
			mcp.Description("Year to check. Defaults to the current year."),
		),
	)
}

func checkHandler(store ports.LogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", clock().Year())

		result, err := commands.NewCheckCommand(store, year).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Issues) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("%d days checked, no issues.", result.Days)), nil
		}

		var sb strings.Builder
		for _, issue := range result.Issues {
			fmt.Fprintf(&sb, "%s  %s  %s\n", issue.Date, issue.Kind, issue.Message)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- backlinks ---

func backlinksTool() mcp.Tool {
	return mcp.NewTool("backlinks",
		mcp.WithDescription("List the log items that link to a note."),
		mcp.WithString("target",
			mcp.Description("Note name, with or without [[ ]]"),
			mcp.Required(),
		),
	)
}

func backlinksHandler(index ports.LinkIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		refs, err := commands.NewBacklinksCommand(index, req.GetString("target", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatRefs(refs)
	}
}

// --- links ---

func linksTool() mcp.Tool {
	return mcp.NewTool("links",
		mcp.WithDescription("List the links written on a day, or the most linked notes when no date is given."),
		mcp.WithString("date",
			mcp.Description("Day in YYYY-MM-DD"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of notes to list without a date (default 20)"),
		),
	)
}

func linksHandler(index ports.LinkIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewLinksCommand(index, req.GetString("date", ""), req.GetInt("limit", 0))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if cmd.Date != "" {
			return formatRefs(result.Refs)
		}
		return formatEntities(result.Top, func(c domain.LinkCount) string {
			return fmt.Sprintf("%d  [[%s]]", c.Count, c.Target)
		})
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRefs(refs []domain.LinkRef) (*mcp.CallToolResult, error) {
	return formatEntities(refs, func(r domain.LinkRef) string {
		return fmt.Sprintf("%s  %s  %s", r.Date, r.Category, strings.TrimSpace(r.Line))
	})
}
