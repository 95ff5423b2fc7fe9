package wikidata

import (
	"net/url"
	"strings"
)

// URL prefixes stripped from fetched values before rendering. The canonical
// fetched value keeps the full URI; these helpers are applied by consumers.
const (
	commonsFilePathPrefix  = "http://commons.wikimedia.org/wiki/Special:FilePath/"
	wikipediaArticlePrefix = "https://en.wikipedia.org/wiki/"
	entityURIPrefix        = "http://www.wikidata.org/entity/"
)

// CleanCommonsFile strips the Commons FilePath prefix from an image URI and
// percent-decodes the remaining file name.
func CleanCommonsFile(s string) string {
	return unescape(strings.TrimPrefix(s, commonsFilePathPrefix))
}

// CleanWikipediaTitle strips the English Wikipedia article prefix from a
// page URI and percent-decodes the remaining title.
func CleanWikipediaTitle(s string) string {
	return unescape(strings.TrimPrefix(s, wikipediaArticlePrefix))
}

// EntityID derives the short Q-identifier from a full entity URI.
func EntityID(uri string) string {
	return strings.TrimPrefix(uri, entityURIPrefix)
}

// unescape percent-decodes s, returning it unchanged when it is not valid
// percent-encoding.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
