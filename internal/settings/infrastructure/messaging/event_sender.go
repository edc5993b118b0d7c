// 包 messaging 配置变更事件的 Kafka 发布实现
package messaging

import (
	"context"
	"encoding/json"

	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"

	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// DefaultTopic 配置变更事件默认主题
const DefaultTopic = "settings.changed"

// KafkaEventSender 尽力而为的变更事件发送：
// 发布失败仅记录完整事件内容后吞掉，不重试、不影响已提交的变更。
// 崩溃在落库与发布之间会静默丢一条失效信号，下游以此为前提设计。
type KafkaEventSender struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaEventSender(producer *kafka.Producer, topic string) domain.EventSender {
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaEventSender{producer: producer, topic: topic}
}

func (s *KafkaEventSender) SendSettingsChanged(ctx context.Context, correlationID, causationID string,
	settingsType domain.SettingsType, route string) {
	event := domain.NewSettingsChangedEvent(correlationID, causationID, settingsType, route)

	payload, err := json.Marshal(event)
	if err != nil {
		logging.Error(ctx, "Failed to marshal settings changed event",
			"component", "KafkaEventSender", "settings_type", settingsType, "error", err)
		return
	}

	if err := s.producer.PublishToTopic(ctx, s.topic, []byte(settingsType), payload); err != nil {
		logging.Error(ctx, "Failed to publish settings changed event",
			"component", "KafkaEventSender", "topic", s.topic, "payload", string(payload), "error", err)
	}
}
