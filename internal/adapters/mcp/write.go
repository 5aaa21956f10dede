package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dailylog/internal/application/commands"
	"dailylog/internal/domain"
	"dailylog/internal/ports"
)

// RegisterWriteTools adds all write log tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.LogStore) {
	s.AddTool(addItemTool(), addItemHandler(store))
}

// --- add_item ---

// writeMu serializes the read-modify-write of add_item; the HTTP transport
// runs handlers concurrently.
var writeMu sync.Mutex

func addItemTool() mcp.Tool {
	enum := categoryColumns()
	for _, c := range domain.Categories {
		enum = append(enum, c.Alias())
	}

	return mcp.NewTool("add_item",
		mcp.WithDescription("Append a timestamped item under a category of a day. The day is created from the template when missing; the year document must already exist."),
		mcp.WithString("item",
			mcp.Description("Item text; [[wiki links]] are kept as written"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category heading: 회사 (work), 개인 (personal), 스크랩 (scrap) or 아이디어 (idea)"),
			mcp.Required(),
			mcp.Enum(enum...),
		),
		mcp.WithString("date",
			mcp.Description("Day to add to: today (default), yesterday, YYYY-MM-DD or MM-DD"),
		),
	)
}

func addItemHandler(store ports.LogStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddItemCommand(store,
			req.GetString("date", "today"),
			req.GetString("category", ""),
			req.GetString("item", ""),
		)
		cmd.Now = clock

		writeMu.Lock()
		result, err := cmd.Execute(ctx)
		writeMu.Unlock()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
