package domain

// Product представляет товар каталога
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      bool     `json:"status"`
	Stock       int64    `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// CartItem позиция в корзине: ссылка на товар и количество.
// Ссылка не проверяется по каталогу — после удаления товара
// позиция остаётся в корзине как есть.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Cart корзина покупок. Порядок позиций — порядок первого добавления.
type Cart struct {
	ID       string     `json:"id"`
	Products []CartItem `json:"products"`
}
