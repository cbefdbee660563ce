package model

type MoneySource struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
	Color     string  `json:"color"`
	CreatedAt string  `json:"created_at"`
}

type GetListMoneySourceRequest struct{}

type GetListMoneySourceResponse struct {
	MoneySources []MoneySource `json:"money_sources"`
}

type CreateMoneySourceRequest struct {
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
	Color    string  `json:"color"`
}

type CreateMoneySourceResponse struct {
	MoneySource MoneySource `json:"money_source"`
}

type UpdateMoneySourceRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Color    string `json:"color"`
}

type UpdateMoneySourceResponse struct {
	MoneySource MoneySource `json:"money_source"`
}

type DeleteMoneySourceRequest struct {
	ID string `json:"id"`
}

type DeleteMoneySourceResponse struct{}
