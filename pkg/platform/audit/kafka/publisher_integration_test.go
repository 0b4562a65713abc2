//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "naturalize/pkg/platform/audit"
	auditkafka "naturalize/pkg/platform/audit/kafka"
	"naturalize/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	broker string
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
}

func (s *KafkaPublisherSuite) TestEmitProducesKeyedRecord() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "audit-events-emit"
	pub, err := auditkafka.New([]string{s.broker}, topic)
	s.Require().NoError(err)
	defer pub.Close()

	s.Require().NoError(pub.EnsureTopic(ctx, 1, 1))
	// Second call tolerates the existing topic.
	s.Require().NoError(pub.EnsureTopic(ctx, 1, 1))

	s.Require().NoError(pub.Emit(ctx, audit.Event{
		UserID: "42",
		Action: string(audit.EventLockoutSet),
		Reason: "2025-03-15",
	}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().Len(records, 1)

	s.Equal("42", string(records[0].Key))
	var got audit.Event
	s.Require().NoError(json.Unmarshal(records[0].Value, &got))
	s.Equal(string(audit.EventLockoutSet), got.Action)
	s.Equal(audit.CategoryCompliance, got.Category)
	s.Equal("2025-03-15", got.Reason)
}

func (s *KafkaPublisherSuite) TestNewRequiresBrokersAndTopic() {
	_, err := auditkafka.New(nil, "t")
	s.Error(err)
	_, err = auditkafka.New([]string{s.broker}, "")
	s.Error(err)
}
