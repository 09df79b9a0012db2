package engineconfig_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEngineConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EngineConfig Suite")
}
