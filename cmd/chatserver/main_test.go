package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/repairguide/internal/config"
)

func TestNewRelay(t *testing.T) {
	cfg := config.Default().Relay
	assert.True(t, newRelay(cfg).Mock())

	cfg.Mock = false
	assert.False(t, newRelay(cfg).Mock())
}
