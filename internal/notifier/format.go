package notifier

import (
	"strconv"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
)

// FormatPrice renders an integer VND amount with thousands separators.
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return sign + string(grouped) + "₫"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func orderTypeLabel(orderType domain.OrderType) string {
	switch orderType {
	case domain.OrderTypeDelivery:
		return "🛵 배달"
	case domain.OrderTypeTable:
		return "🏪 테이블예약"
	default:
		return string(orderType)
	}
}

func locationLabel(location domain.DeliveryLocation) string {
	switch location {
	case domain.LocationKalidas:
		return "칼리다스"
	case domain.LocationKyeongnamA:
		return "경남A"
	case domain.LocationKyeongnamB:
		return "경남B"
	case domain.LocationOther:
		return "기타 주소"
	default:
		return string(location)
	}
}

func paymentLabel(method domain.PaymentMethod) string {
	switch method {
	case domain.PaymentCash:
		return "현금 결제 (COD)"
	case domain.PaymentTransfer:
		return "계좌 이체"
	default:
		return string(method)
	}
}

func statusLabel(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPending:
		return "🔔 접수됨"
	case domain.StatusConfirmed:
		return "✅ 확인됨"
	case domain.StatusPreparing:
		return "👨‍🍳 준비중"
	case domain.StatusReady:
		return "🍽️ 준비완료"
	case domain.StatusDelivered:
		return "🛵 배달완료"
	case domain.StatusCompleted:
		return "✅ 완료"
	case domain.StatusCancelled:
		return "❌ 취소됨"
	default:
		return string(status)
	}
}
