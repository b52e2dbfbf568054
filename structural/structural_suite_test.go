package structural_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestStructural(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "structural suite")
}
