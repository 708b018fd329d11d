// Package notifier consumes order events from Kafka and forwards them to the
// staff Slack channel. Delivery is best-effort: one attempt per event, errors
// are logged and the message is dropped.
package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"github.com/slack-go/slack"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

// Poster is the slice of *slack.Client the consumer needs.
type Poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Consumer struct {
	Reader  *kafka.Reader
	Orders  service.OrderServiceInterface
	Slack   Poster
	Channel string
}

func NewConsumer(reader *kafka.Reader, orders service.OrderServiceInterface, poster Poster, channel string) *Consumer {
	return &Consumer{
		Reader:  reader,
		Orders:  orders,
		Slack:   poster,
		Channel: channel,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[notifier] starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[notifier] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[notifier] error unmarshaling event: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	if c.Slack == nil || c.Channel == "" {
		log.Printf("[notifier] slack not configured, skipping %s for %s", event.Type, event.OrderNumber)
		return
	}

	switch event.Type {
	case domain.EventOrderCreated:
		c.notifyCreated(ctx, event)
	case domain.EventStatusChanged:
		c.notifyStatusChanged(ctx, event)
	default:
		log.Printf("[notifier] ignoring unknown event type %q", event.Type)
	}
}

func (c *Consumer) notifyCreated(ctx context.Context, event domain.OrderEvent) {
	order, err := c.Orders.Get(event.OrderID)
	if err != nil {
		log.Printf("[notifier] cannot load order %d: %v", event.OrderID, err)
		return
	}

	_, _, err = c.Slack.PostMessageContext(ctx, c.Channel,
		slack.MsgOptionText("새 주문 접수 - "+order.OrderNumber, false),
		slack.MsgOptionBlocks(orderBlocks(order)...))
	if err != nil {
		log.Printf("[notifier] slack post failed for %s: %v", order.OrderNumber, err)
		return
	}
	log.Printf("[notifier] order notification sent: %s", order.OrderNumber)
}

func (c *Consumer) notifyStatusChanged(ctx context.Context, event domain.OrderEvent) {
	text := "🔄 주문 상태 업데이트\n주문번호: " + event.OrderNumber + "\n상태: " + statusLabel(event.Status)
	_, _, err := c.Slack.PostMessageContext(ctx, c.Channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil),
		))
	if err != nil {
		log.Printf("[notifier] slack status post failed for %s: %v", event.OrderNumber, err)
	}
}

func orderBlocks(order *domain.OrderWithItems) []slack.Block {
	itemLines := ""
	for _, item := range order.Items {
		itemLines += "• " + item.MenuItemName + " x" + itoa(item.Quantity) +
			" - " + FormatPrice(item.Price*item.Quantity) + "\n"
	}

	locationText := "🏪 매장 테이블 예약"
	if order.OrderType == domain.OrderTypeDelivery {
		locationText = "📍 " + locationLabel(order.DeliveryLocation)
		if order.DetailAddress != "" {
			locationText += "\n" + order.DetailAddress
		}
		if order.CustomAddress != "" {
			locationText += "\n" + order.CustomAddress
		}
	}

	return []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "🔔 새 주문 접수 - "+order.OrderNumber, false, false)),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, "*주문 방식:*\n"+orderTypeLabel(order.OrderType), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*연락처:*\n"+order.CustomerPhone, false, false),
		}, nil),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*배달 정보:*\n"+locationText, false, false), nil, nil),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*주문 내역:*\n"+itemLines, false, false), nil, nil),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, "*소계:* "+FormatPrice(order.Subtotal), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*배달비:* "+FormatPrice(order.DeliveryFee), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*부가세:* "+FormatPrice(order.Tax), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, "*총액:* "+FormatPrice(order.Total), false, false),
		}, nil),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*결제 방식:* "+paymentLabel(order.PaymentMethod), false, false), nil, nil),
	}
}
