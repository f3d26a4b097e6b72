package domain

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&User{},
		&Character{},
		&Planet{},
		&Vehicle{},
		&Favourite{},
	}
}
