package controller_test

import (
	"testing"

	"github.com/battlesnakeio/snake/controller"
	"github.com/battlesnakeio/snake/controller/testsuite"
)

func TestStore_InMem(t *testing.T) {
	testsuite.Suite(t, controller.InMemStore)
}
