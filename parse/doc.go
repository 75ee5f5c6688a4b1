// Package parse reads patch documents written as JSON or YAML.
package parse
