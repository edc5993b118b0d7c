// 包 settings 服务的领域模型
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TraceableMessage 所有入站请求参数与出站事件的可追溯基础结构。
// Id 每个消息实例唯一，重试同一逻辑操作也会生成新的 Id；
// CorrelationId 从入站消息原样复制，链路起点处等于自身 Id；
// CausationId 指向直接前置消息的 Id，链路起点为空。
type TraceableMessage struct {
	ID             string    `json:"id"`
	CorrelationID  string    `json:"correlationId"`
	CausationID    string    `json:"causationId,omitempty"`
	EventTimestamp time.Time `json:"eventTimestamp"`
}

// NewMessageID 生成新的消息标识（uuid v4，无连字符）
func NewMessageID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewTraceableMessage 基于入站消息派生出站消息的追溯信息。
// inbound 为 nil 时表示链路在 API 边界发起：correlationId 取新生成的 Id，causationId 为空。
func NewTraceableMessage(inbound *TraceableMessage) TraceableMessage {
	id := NewMessageID()
	if inbound == nil {
		return TraceableMessage{
			ID:             id,
			CorrelationID:  id,
			EventTimestamp: time.Now().UTC(),
		}
	}
	return TraceableMessage{
		ID:             id,
		CorrelationID:  inbound.ExtractCorrelationID(),
		CausationID:    inbound.ID,
		EventTimestamp: time.Now().UTC(),
	}
}

// Normalize 入站参数缺失 Id 时补齐，保证后续提取永远有非空值可用
func (m *TraceableMessage) Normalize() {
	if strings.TrimSpace(m.ID) == "" {
		m.ID = NewMessageID()
	}
	if m.EventTimestamp.IsZero() {
		m.EventTimestamp = time.Now().UTC()
	}
}

// ExtractCorrelationID 返回 correlationId，空白时回退到 Id
func (m *TraceableMessage) ExtractCorrelationID() string {
	if strings.TrimSpace(m.CorrelationID) == "" {
		return m.ID
	}
	return m.CorrelationID
}

// ExtractCausationID 返回 causationId，空白时回退到 Id
func (m *TraceableMessage) ExtractCausationID() string {
	if strings.TrimSpace(m.CausationID) == "" {
		return m.ID
	}
	return m.CausationID
}
