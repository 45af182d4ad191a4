package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/gostorefront/catalog/internal/models"
)

const ProductIndex = "products"

// Client mirrors catalog writes into Elasticsearch. Reads stay on the
// database; the index exists for external consumers.
type Client struct {
	es *elasticsearch.Client
}

func NewClient(url, user, password string) (*Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("es: create client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es: info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es: info: %s: %s", res.Status(), body)
	}

	return &Client{es: client}, nil
}

func (c *Client) IndexProduct(ctx context.Context, p *models.Product) error {
	doc, err := json.Marshal(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"created_at":  p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("es: marshal product: %w", err)
	}

	res, err := c.es.Index(
		ProductIndex,
		bytes.NewReader(doc),
		c.es.Index.WithDocumentID(p.ID.String()),
		c.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("es: index product: %s: %s", res.Status(), body)
	}
	return nil
}
