package model

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

const (
	CodeItemAdded           = "ItemAdded"
	CodeStockCeilingReached = "StockCeilingReached"
	CodeProductNotFound     = "ProductNotFound"
	CodeOutOfStock          = "OutOfStock"
	CodeEmptyCart           = "EmptyCart"
	CodeInvalidQuantity     = "InvalidQuantity"
	CodePersistenceFailure  = "PersistenceFailure"
	CodeOrderCreated        = "OrderCreated"
	CodeOrderNotFound       = "OrderNotFound"
	CodeInvalidRequest      = "InvalidRequest"
	CodeInvalidCredential   = "InvalidCredential"
	CodeUnsupportedMethod   = "UnsupportedLoginMethod"
	CodeNotLoggedIn         = "NotLoggedIn"
)

// Notice is the human readable outcome shown by the rendering layer as a toast.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
}
