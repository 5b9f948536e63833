package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rf-wms/models"
)

func TestLookupService_BinCodeNormalization(t *testing.T) {
	svc := NewLookupService("01-")

	t.Run("LooksLikeBinCode", func(t *testing.T) {
		assert.True(t, svc.LooksLikeBinCode("0002"))
		assert.True(t, svc.LooksLikeBinCode("01-0002"))
		assert.True(t, svc.LooksLikeBinCode("42"))
		assert.False(t, svc.LooksLikeBinCode("MOUSE-001"))
		assert.False(t, svc.LooksLikeBinCode("1"))
		assert.False(t, svc.LooksLikeBinCode("1234567"))
	})

	t.Run("NormalizeInput adds prefix to bare bin codes", func(t *testing.T) {
		assert.Equal(t, "01-0002", svc.NormalizeInput("0002"))
		assert.Equal(t, "01-0002", svc.NormalizeInput("01-0002"))
		assert.Equal(t, "MOUSE-001", svc.NormalizeInput("  mouse-001 "))
	})

	t.Run("DisplayBinCode strips prefix", func(t *testing.T) {
		assert.Equal(t, "0002", svc.DisplayBinCode("01-0002"))
		assert.Equal(t, "0002", svc.DisplayBinCode("0002"))
	})
}

func TestLookupService_Resolve(t *testing.T) {
	svc := NewLookupService("01-")

	bins := []models.BinLocation{
		{BinCode: "01-0002", Items: []models.BinItem{{ItemCode: "MOUSE-001", Quantity: 10}}},
		{BinCode: "01-0528"},
	}
	items := []models.Item{
		{BinCode: "01-0002", ItemCode: "MOUSE-001", Description: "Wireless Mouse", ExpectedQty: 10},
		{BinCode: "01-0002", ItemCode: "MOUSE-002", Description: "Gaming Mouse", ExpectedQty: 5},
		{BinCode: "01-0528", ItemCode: "KB-042", Description: "Keyboard", ExpectedQty: 3},
	}

	t.Run("exact bin match wins", func(t *testing.T) {
		result := svc.Resolve("0002", bins, items)
		require.NotNil(t, result)
		assert.Equal(t, "bin", result.Type)
		assert.Equal(t, "01-0002", result.Bin.BinCode)
	})

	t.Run("exact item match", func(t *testing.T) {
		result := svc.Resolve("MOUSE-001", bins, items)
		require.NotNil(t, result)
		assert.Equal(t, "item", result.Type)
		require.NotNil(t, result.Item)
		assert.Equal(t, "MOUSE-001", result.Item.ItemCode)
	})

	t.Run("partial match with several candidates", func(t *testing.T) {
		result := svc.Resolve("MOUSE", bins, items)
		require.NotNil(t, result)
		assert.Equal(t, "item", result.Type)
		assert.Nil(t, result.Item)
		assert.Len(t, result.Matches, 2)
	})

	t.Run("single partial match resolves directly", func(t *testing.T) {
		result := svc.Resolve("KEYBOARD", bins, items)
		require.NotNil(t, result)
		require.NotNil(t, result.Item)
		assert.Equal(t, "KB-042", result.Item.ItemCode)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, svc.Resolve("ZZZZZZ", bins, items))
	})

	t.Run("resolve is pure", func(t *testing.T) {
		first := svc.Resolve("MOUSE-001", bins, items)
		second := svc.Resolve("MOUSE-001", bins, items)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.Item.ItemCode, second.Item.ItemCode)
	})
}

func TestLookupService_SearchItems(t *testing.T) {
	svc := NewLookupService("01-")

	items := []models.Item{
		{BinCode: "01-0001", ItemCode: "CABLE-42", Description: "HDMI Cable"},
		{BinCode: "01-0002", ItemCode: "42", Description: "Mystery Box"},
		{BinCode: "01-0003", ItemCode: "CABLE-420", Description: "USB Cable"},
		{BinCode: "01-0004", ItemCode: "CABLE-42", Description: "HDMI Cable duplicate row"},
	}

	t.Run("short query returns nothing", func(t *testing.T) {
		assert.Nil(t, svc.SearchItems("4", items))
	})

	t.Run("leading zeros are stripped for matching", func(t *testing.T) {
		results := svc.SearchItems("0042", items)
		require.NotEmpty(t, results)
		assert.Equal(t, "42", results[0].ItemCode)
	})

	t.Run("exact before prefix before alphabetical, deduplicated", func(t *testing.T) {
		results := svc.SearchItems("CABLE-42", items)
		require.Len(t, results, 2)
		assert.Equal(t, "CABLE-42", results[0].ItemCode)
		assert.Equal(t, "CABLE-420", results[1].ItemCode)
	})
}
