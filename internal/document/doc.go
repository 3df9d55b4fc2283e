// Package document reads YAML input into the engine's source value form.
// Unlike a plain yaml.Unmarshal into map[string]any it keeps mapping key
// order and rejects duplicate keys up front, before binding starts.
package document
