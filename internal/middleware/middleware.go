// Package middleware holds the demo service's global Echo middleware:
// request correlation IDs and structured request logging.
package middleware
