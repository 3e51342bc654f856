package helpers

// Request/Response DTOs
type CreateSellOrderRequest struct {
	ItemID         uint32 `json:"itemId" binding:"required"`
	StartPrice     uint   `json:"startPrice"`
	BuyoutPrice    uint   `json:"buyoutPrice"`
	NumberOfStacks int    `json:"numberOfStacks" binding:"required,gt=0"`
	StackSize      int    `json:"stackSize" binding:"required,gt=0"`
	CurrencyWcid   uint32 `json:"currencyWcid" binding:"required"`
	HoursDuration  int    `json:"hoursDuration" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	PlayerID  uint32 `json:"playerId" binding:"required"`
	BidAmount uint   `json:"bidAmount" binding:"required,gt=0"`
}

type TagItemRequest struct {
	ItemID uint32 `json:"itemId" binding:"required"`
}
