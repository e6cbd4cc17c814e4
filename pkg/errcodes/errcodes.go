package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError     failure.ErrorCode = "InternalServerError"
	TimeoutExceeded         failure.ErrorCode = "TimeoutExceeded"
	Forbidden               failure.ErrorCode = "Forbidden"
	ValidationError         failure.ErrorCode = "ValidationError"
	NotFound                failure.ErrorCode = "NotFound"
	DealNotFound            failure.ErrorCode = "DealNotFound"
	ProductNotFound         failure.ErrorCode = "ProductNotFound"
	DealInactive            failure.ErrorCode = "DealInactive"
	DealExpired             failure.ErrorCode = "DealExpired"
	DealSoldOut             failure.ErrorCode = "DealSoldOut"
	InvalidDealID           failure.ErrorCode = "InvalidDealID"
	InvalidQuantity         failure.ErrorCode = "InvalidQuantity"
	InvalidPaymentMethod    failure.ErrorCode = "InvalidPaymentMethod"
	PaymentMethodNotAllowed failure.ErrorCode = "PaymentMethodNotAllowed"
	InvalidPriceTier        failure.ErrorCode = "InvalidPriceTier"
	AlertNotDelivered       failure.ErrorCode = "AlertNotDelivered"
)
