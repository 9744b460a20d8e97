package request

// EditCashAmountRequest corrects the tendered cash on a receipt
type EditCashAmountRequest struct {
	CashAmount float64 `json:"cashAmount" binding:"required,min=0"`
}

// ReceiptItemRequest is one candidate line for AddLineItems
type ReceiptItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Size  string  `json:"size"`
	Price float64 `json:"price" binding:"min=0"`
}

// AddReceiptItemsRequest appends items to a committed receipt
type AddReceiptItemsRequest struct {
	Items []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CommitReceiptRequest finalizes a receipt edit session
type CommitReceiptRequest struct {
	CustomerName string `json:"customerName"`
}
