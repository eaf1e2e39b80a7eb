// Package process stops the headless browser used for share cards
// together with the renderer and GPU helpers it forks.
package process
