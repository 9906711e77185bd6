package node_test

import (
	"firewatch-server/internal/infra/node"
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.CommitHash).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.StartedAt).ToNot(gomega.BeZero())
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			nodeInfo := node.GetNodeInfo()
			_, err := uuid.Parse(nodeInfo.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should return the same node ID on multiple calls (singleton)", func() {
			nodeInfo1 := node.GetNodeInfo()
			nodeInfo2 := node.GetNodeInfo()
			gomega.Expect(nodeInfo1.ID).To(gomega.Equal(nodeInfo2.ID))
			gomega.Expect(nodeInfo1.StartedAt).To(gomega.Equal(nodeInfo2.StartedAt))
		})

		ginkgo.It("should hand out copies", func() {
			nodeInfo := node.GetNodeInfo()
			nodeInfo.ID = "tampered"
			gomega.Expect(node.GetNodeInfo().ID).NotTo(gomega.Equal("tampered"))
		})

		ginkgo.It("should reflect the build variables", func() {
			previous := node.Version
			node.Version = "1.2.3"
			defer func() { node.Version = previous }()

			gomega.Expect(node.GetNodeInfo().Version).To(gomega.Equal("1.2.3"))
		})
	})

	ginkgo.Context("Uptime", func() {
		ginkgo.It("should be measured from the start time", func() {
			nodeInfo := &node.Node{StartedAt: time.Now().Add(-90 * time.Second)}
			gomega.Expect(nodeInfo.Uptime()).To(gomega.BeNumerically(">=", 90*time.Second))
			gomega.Expect(nodeInfo.Uptime()).To(gomega.BeNumerically("<", 95*time.Second))
		})
	})
})
