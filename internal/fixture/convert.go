package fixture

import (
	"github.com/marketbee/shopfront/pkg/api"
)

// Response shaping. The fixture answers with the same wire types the client
// decodes, so contract drift shows up as a test failure in one place.

func (s *Server) apiProduct(p Product) api.Product {
	out := api.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
	}
	if p.CategoryID != 0 {
		var cat Category
		if err := s.DB.First(&cat, p.CategoryID).Error; err == nil {
			out.CategoryName = cat.Name
		}
	}
	type agg struct {
		Avg   float64
		Count int
	}
	var a agg
	s.DB.Model(&Review{}).
		Select("COALESCE(AVG(rating),0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", p.ID).
		Scan(&a)
	out.AverageRating = a.Avg
	out.ReviewCount = a.Count
	return out
}

func (s *Server) apiProducts(products []Product) []api.Product {
	out := make([]api.Product, 0, len(products))
	for _, p := range products {
		out = append(out, s.apiProduct(p))
	}
	return out
}

func (s *Server) apiCart(uid uint) (api.Cart, error) {
	var items []CartItem
	if err := s.DB.Where("user_id = ?", uid).Order("id").Find(&items).Error; err != nil {
		return api.Cart{}, err
	}
	cart := api.Cart{ID: uid, Items: make([]api.CartItem, 0, len(items))}
	for _, it := range items {
		var p Product
		if err := s.DB.First(&p, it.ProductID).Error; err != nil {
			continue
		}
		line := api.CartItem{
			ID:       it.ID,
			Product:  s.apiProduct(p),
			Price:    p.Price,
			Quantity: it.Quantity,
		}
		cart.Items = append(cart.Items, line)
		cart.TotalPrice += line.Price * float64(line.Quantity)
	}
	return cart, nil
}

func (s *Server) apiOrder(o Order) api.Order {
	out := api.Order{
		ID:          o.ID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		OrderDate:   o.CreatedAt,
	}
	var items []OrderItem
	s.DB.Where("order_id = ?", o.ID).Order("id").Find(&items)
	for _, it := range items {
		var p Product
		s.DB.First(&p, it.ProductID)
		out.Items = append(out.Items, api.OrderItem{
			ID:       it.ID,
			Product:  s.apiProduct(p),
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	if o.AddressID != 0 {
		var addr Address
		if err := s.DB.First(&addr, o.AddressID).Error; err == nil {
			out.Address = &api.Address{
				ID:           addr.ID,
				FullName:     addr.FullName,
				Phone:        addr.Phone,
				AddressLine1: addr.AddressLine1,
				AddressLine2: addr.AddressLine2,
				City:         addr.City,
				State:        addr.State,
				ZipCode:      addr.ZipCode,
				Country:      addr.Country,
			}
		}
	}
	return out
}

func (s *Server) apiReview(r Review) api.Review {
	out := api.Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	var u User
	if err := s.DB.First(&u, r.UserID).Error; err == nil {
		out.UserName = u.FullName
	}
	return out
}
