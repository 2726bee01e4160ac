package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/knoxval/fortshop/internal/fortnite"
	"github.com/knoxval/fortshop/internal/shop"
	"github.com/knoxval/fortshop/internal/watch"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer, deps Deps) {
	// get_shop
	shopTool := mcp.NewTool("get_shop",
		mcp.WithDescription("Get the current Fortnite item shop, grouped into layout sections"),
		mcp.WithString("group_by",
			mcp.Description("Section grouping key: index or name (default: index)"),
		),
	)
	s.AddTool(shopTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetShop(ctx, deps, request)
	})

	// get_item
	itemTool := mcp.NewTool("get_item",
		mcp.WithDescription("Get full details for a cosmetic by its ID"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Cosmetic ID, e.g. CID_028_Athena_Commando_F"),
		),
	)
	s.AddTool(itemTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetItem(ctx, deps, request)
	})

	// search_items
	searchTool := mcp.NewTool("search_items",
		mcp.WithDescription("Search BR cosmetics by name with optional filters"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to search for"),
		),
		mcp.WithString("match",
			mcp.Description("Match method: full, contains, starts, ends (default: contains)"),
		),
		mcp.WithString("type",
			mcp.Description("Cosmetic type filter (outfit, backpack, ...)"),
		),
		mcp.WithString("rarity",
			mcp.Description("Rarity filter (common, rare, epic, ...)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 20)"),
		),
	)
	s.AddTool(searchTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSearchItems(ctx, deps, request)
	})

	// watch_item / unwatch_item / list_watched
	watchTool := mcp.NewTool("watch_item",
		mcp.WithDescription("Add an item ID to the watch list for shop-rotation notifications"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item ID to watch"),
		),
	)
	s.AddTool(watchTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleWatchItem(deps, request, true)
	})

	unwatchTool := mcp.NewTool("unwatch_item",
		mcp.WithDescription("Remove an item ID from the watch list"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item ID to stop watching"),
		),
	)
	s.AddTool(unwatchTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleWatchItem(deps, request, false)
	})

	listTool := mcp.NewTool("list_watched",
		mcp.WithDescription("List all watched item IDs"),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListWatched(deps)
	})

	// check_shop_update
	checkTool := mcp.NewTool("check_shop_update",
		mcp.WithDescription("Run one shop-update notification check against the watch list"),
	)
	s.AddTool(checkTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleCheckShopUpdate(ctx, deps)
	})
}

func handleGetShop(ctx context.Context, deps Deps, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupBy := request.GetString("group_by", string(shop.GroupByIndex))

	data, err := deps.Client.Shop(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("shop error: %v", err)), nil
	}
	sections := shop.GroupAndSort(data.Entries, shop.GroupBy(groupBy))

	out, _ := json.MarshalIndent(sections, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func handleGetItem(ctx context.Context, deps Deps, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	item, err := deps.Client.Item(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("item error: %v", err)), nil
	}

	out, _ := json.MarshalIndent(item, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func handleSearchItems(ctx context.Context, deps Deps, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	limit := request.GetInt("limit", 20)

	items, err := deps.Client.Search(ctx, fortnite.SearchParams{
		Name:        name,
		MatchMethod: request.GetString("match", "contains"),
		Type:        request.GetString("type", ""),
		Rarity:      request.GetString("rarity", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search error: %v", err)), nil
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func handleWatchItem(deps Deps, request mcp.CallToolRequest, add bool) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	var err error
	verb := "no longer watching"
	if add {
		err = deps.Watch.Watch(id)
		verb = "watching"
	} else {
		err = deps.Watch.Unwatch(id)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("watch error: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Now %s %s", verb, id)), nil
}

func handleListWatched(deps Deps) (*mcp.CallToolResult, error) {
	items := deps.Watch.Watched()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out, _ := json.MarshalIndent(ids, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func handleCheckShopUpdate(ctx context.Context, deps Deps) (*mcp.CallToolResult, error) {
	checker := watch.NewChecker(deps.Client, deps.Watch, nil)
	res, err := checker.Run(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check error: %v", err)), nil
	}

	out, _ := json.MarshalIndent(map[string]any{
		"shopUpdated":  res.ShopUpdated,
		"watchedFound": res.WatchedFound,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
