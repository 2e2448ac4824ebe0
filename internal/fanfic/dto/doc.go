// Package dto holds the wire shapes of the fanfic API and their conversion
// to model types.
package dto
