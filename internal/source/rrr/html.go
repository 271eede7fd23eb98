package rrr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"parts_harvester/internal/domain"
)

// parseOptions extracts taxonomy nodes from select/option elements whose id
// or name attribute contains the entity kind ("brand", "model").
func parseOptions(body []byte, kind string) []domain.TaxonomyNode {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	selector := fmt.Sprintf("select[id*=%s] option, select[name*=%s] option", kind, kind)

	var nodes []domain.TaxonomyNode
	doc.Find(selector).Each(func(_ int, opt *goquery.Selection) {
		value, _ := opt.Attr("value")
		text := strings.TrimSpace(opt.Text())
		if value != "" && text != "" {
			nodes = append(nodes, domain.TaxonomyNode{ID: value, Name: text})
		}
	})
	return nodes
}

// parseSearchPage extracts raw listings from a rendered search-results page.
// The selectors are deliberately permissive; the markup varies between page
// templates.
func (s *Source) parseSearchPage(body []byte, brand, model, generation, category string) []domain.RawListing {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var listings []domain.RawListing
	doc.Find("div.part, div.search-item, li.search-item").Each(func(_ int, item *goquery.Selection) {
		article, ok := item.Attr("data-article")
		if !ok {
			article, _ = item.Attr("data-code")
		}

		description := strings.TrimSpace(item.Find(".title, .search-item__title, h3").First().Text())
		priceText := strings.TrimSpace(item.Find(".price, .search-item__price, .item-price").First().Text())
		location := strings.TrimSpace(item.Find(".location, .search-item__location").First().Text())

		var url string
		if href, ok := item.Find("a").First().Attr("href"); ok {
			url = s.baseURL + href
		}
		imageURL, _ := item.Find("img").First().Attr("src")

		listings = append(listings, domain.RawListing{
			Platform:    PlatformID,
			Article:     article,
			Brand:       brand,
			Model:       model,
			Generation:  generation,
			Category:    category,
			Description: description,
			PriceText:   priceText,
			Location:    location,
			URL:         url,
			ImageURL:    imageURL,
		})
	})
	return listings
}
