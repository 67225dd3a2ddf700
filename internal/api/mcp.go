package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codegod100/roc-syntax-mcp/internal/syntax"
	"github.com/codegod100/roc-syntax-mcp/internal/topics"
)

// RegisterMCP registers the syntax reference tools on an MCP server.
func RegisterMCP(srv *mcp.Server, svc *syntax.Service) {
	registerGetSyntaxTool(srv, svc)
	registerSearchSyntaxTool(srv, svc)
	registerListTopicsTool(srv, svc)
}

func objectSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func textResult(display string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: display}},
		StructuredContent: structured,
	}
}

// --- get_roc_syntax ---

func registerGetSyntaxTool(srv *mcp.Server, svc *syntax.Service) {
	tool := &mcp.Tool{
		Name:        "get_roc_syntax",
		Description: "Get the complete Roc syntax reference document.",
		InputSchema: objectSchema(map[string]any{}, nil),
		OutputSchema: objectSchema(map[string]any{
			"syntax": stringProp("Full reference document text"),
		}, []string{"syntax"}),
	}

	srv.AddTool(tool, func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := svc.FullReference()
		return textResult(text, map[string]any{"syntax": text}), nil
	})
}

// --- search_roc_syntax ---

type searchReq struct {
	Query string `json:"query"`
}

func registerSearchSyntaxTool(srv *mcp.Server, svc *syntax.Service) {
	tool := &mcp.Tool{
		Name:        "search_roc_syntax",
		Description: "Search the Roc syntax reference by topic keyword and get matching examples.",
		InputSchema: objectSchema(map[string]any{
			"query": stringProp("Free-text topic query, e.g. \"pattern matching\" or \"records\""),
		}, []string{"query"}),
		OutputSchema: objectSchema(map[string]any{
			"topic":       stringProp("Resolved topic name, or \"help\" when nothing matched"),
			"description": stringProp("Topic description"),
			"examples":    stringProp("Assembled example blocks"),
		}, []string{"topic", "description", "examples"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r searchReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("invalid arguments: %w", err))
			return &res, nil
		}

		result := svc.Search(r.Query)
		display := result.Description
		if result.Topic != topics.Help {
			display = fmt.Sprintf("Topic: %s\n%s\n\n```roc\n%s\n```",
				result.Topic, result.Description, result.Examples)
		}
		return textResult(display, map[string]any{
			"topic":       result.Topic,
			"description": result.Description,
			"examples":    result.Examples,
		}), nil
	})
}

// --- list_roc_topics ---

func registerListTopicsTool(srv *mcp.Server, svc *syntax.Service) {
	tool := &mcp.Tool{
		Name:        "list_roc_topics",
		Description: "List every searchable Roc syntax topic with its description.",
		InputSchema: objectSchema(map[string]any{}, nil),
		OutputSchema: objectSchema(map[string]any{
			"topics": map[string]any{
				"type": "array",
				"items": objectSchema(map[string]any{
					"name":        stringProp("Topic name"),
					"description": stringProp("Topic description"),
				}, []string{"name", "description"}),
			},
		}, []string{"topics"}),
	}

	srv.AddTool(tool, func(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(topics.CatalogText(), map[string]any{
			"topics": svc.Topics(),
		}), nil
	})
}
