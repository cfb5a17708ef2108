// Package feed genera el feed de productos (RSS 2.0 con el namespace g: de Merchant Center)
// para comparadores de precios y marketplaces externos.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/mallofcayman/catalog-api/internal/application/ports"
)

var _ ports.ProductFeedBuilder = (*RSSFeedBuilder)(nil)

// NsGoogle namespace de atributos de producto de Merchant Center.
const NsGoogle = "http://base.google.com/ns/1.0"

// RSSFeedBuilder implementa ports.ProductFeedBuilder.
type RSSFeedBuilder struct {
	baseURL  string // URL pública de la tienda, sin barra final
	currency string
}

// NewRSSFeedBuilder construye el builder. currency vacío = KYD.
func NewRSSFeedBuilder(baseURL, currency string) *RSSFeedBuilder {
	if currency == "" {
		currency = "KYD"
	}
	return &RSSFeedBuilder{baseURL: strings.TrimRight(baseURL, "/"), currency: currency}
}

// BuildProductFeed serializa los productos en el orden recibido.
func (b *RSSFeedBuilder) BuildProductFeed(_ context.Context, export ports.CatalogExport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:g", NsGoogle)

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(export.Title)
	channel.CreateElement("link").SetText(b.baseURL)
	desc := "Catálogo completo"
	if export.Category != "" {
		desc = "Categoría: " + export.Category
	}
	channel.CreateElement("description").SetText(desc)
	channel.CreateElement("lastBuildDate").SetText(export.GeneratedAt.UTC().Format(time.RFC1123Z))

	for _, p := range export.Products {
		if p == nil {
			continue
		}
		item := channel.CreateElement("item")
		item.CreateElement("g:id").SetText(p.ID)
		item.CreateElement("title").SetText(p.Name)
		if p.Description != "" {
			item.CreateElement("description").SetText(p.Description)
		}
		item.CreateElement("link").SetText(b.baseURL + "/products/" + p.ID)
		item.CreateElement("g:price").SetText(p.Price.StringFixed(2) + " " + b.currency)
		item.CreateElement("g:condition").SetText("new")
		if label := export.CategoryLabel(p); label != "" {
			item.CreateElement("g:product_type").SetText(label)
		}
		if p.StoreID != "" {
			item.CreateElement("g:brand").SetText(p.StoreID)
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out.Bytes(), nil
}
