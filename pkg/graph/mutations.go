package graph

import (
	"github.com/graphql-go/graphql"

	"cashcompass/models"
	"cashcompass/store"
)

func (b *builder) mutation() *graphql.Object {
	m := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: graphql.Fields{},
	})

	m.AddFieldConfig("createUser", &graphql.Field{
		Type: b.userType,
		Args: graphql.FieldConfigArgument{
			"fullName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			hash, err := b.hasher.Hash(stringArg(p, "password"))
			if err != nil {
				return nil, err
			}
			u := &models.User{
				FullName:     stringArg(p, "fullName"),
				Email:        stringArg(p, "email"),
				PasswordHash: hash,
			}
			if err := b.st.CreateUser(p.Context, u); err != nil {
				return nil, err
			}
			return u, nil
		},
	})
	m.AddFieldConfig("updateUser", &graphql.Field{
		Type: b.userType,
		Args: graphql.FieldConfigArgument{
			"userId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"fullName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "userId")
			if err != nil {
				return nil, err
			}
			return b.st.UpdateUser(p.Context, id, store.UserUpdate{
				FullName: stringArg(p, "fullName"),
				Email:    stringArg(p, "email"),
			})
		},
	})
	m.AddFieldConfig("deleteUser", &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "userId")
			if err != nil {
				return nil, err
			}
			if err := b.st.DeleteUser(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	})

	m.AddFieldConfig("createCategory", &graphql.Field{
		Type: b.categoryType,
		Args: graphql.FieldConfigArgument{
			"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"categoryName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":  &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := idArg(p, "userId")
			if err != nil {
				return nil, err
			}
			c := &models.Category{
				UserID: userID,
				Name:   stringArg(p, "categoryName"),
			}
			if desc := optStringArg(p, "description"); desc != nil {
				c.Description = *desc
			}
			if err := b.st.CreateCategory(p.Context, c); err != nil {
				return nil, err
			}
			return c, nil
		},
	})
	m.AddFieldConfig("updateCategory", &graphql.Field{
		Type: b.categoryType,
		Args: graphql.FieldConfigArgument{
			"categoryId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"categoryName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":  &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "categoryId")
			if err != nil {
				return nil, err
			}
			return b.st.UpdateCategory(p.Context, id, store.CategoryUpdate{
				Name:        stringArg(p, "categoryName"),
				Description: optStringArg(p, "description"),
			})
		},
	})
	m.AddFieldConfig("deleteCategory", &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"categoryId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "categoryId")
			if err != nil {
				return nil, err
			}
			if err := b.st.DeleteCategory(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	})

	m.AddFieldConfig("createIncomeSource", &graphql.Field{
		Type: b.incomeSourceType,
		Args: graphql.FieldConfigArgument{
			"userId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"sourceName":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalType)},
			"payFrequency": &graphql.ArgumentConfig{Type: graphql.String},
			"nextPayDate":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := idArg(p, "userId")
			if err != nil {
				return nil, err
			}
			nextPay, err := timeArg(p, "nextPayDate")
			if err != nil {
				return nil, err
			}
			src := &models.IncomeSource{
				UserID:       userID,
				SourceName:   stringArg(p, "sourceName"),
				Amount:       decimalArg(p, "amount"),
				PayFrequency: stringArg(p, "payFrequency"),
				NextPayDate:  nextPay,
			}
			if err := b.st.CreateIncomeSource(p.Context, src); err != nil {
				return nil, err
			}
			return src, nil
		},
	})
	m.AddFieldConfig("updateIncomeSource", &graphql.Field{
		Type: b.incomeSourceType,
		Args: graphql.FieldConfigArgument{
			"incomeId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"sourceName":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalType)},
			"payFrequency": &graphql.ArgumentConfig{Type: graphql.String},
			"nextPayDate":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "incomeId")
			if err != nil {
				return nil, err
			}
			nextPay, err := timeArg(p, "nextPayDate")
			if err != nil {
				return nil, err
			}
			return b.st.UpdateIncomeSource(p.Context, id, store.IncomeSourceUpdate{
				SourceName:   stringArg(p, "sourceName"),
				Amount:       decimalArg(p, "amount"),
				PayFrequency: stringArg(p, "payFrequency"),
				NextPayDate:  nextPay,
			})
		},
	})
	m.AddFieldConfig("deleteIncomeSource", &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"incomeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "incomeId")
			if err != nil {
				return nil, err
			}
			if err := b.st.DeleteIncomeSource(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	})

	m.AddFieldConfig("createAllocation", &graphql.Field{
		Type: b.allocationType,
		Args: graphql.FieldConfigArgument{
			"userId":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"incomeId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"categoryId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"allocationType":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"allocationValue": &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalType)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := idArg(p, "userId")
			if err != nil {
				return nil, err
			}
			incomeID, err := idArg(p, "incomeId")
			if err != nil {
				return nil, err
			}
			categoryID, err := idArg(p, "categoryId")
			if err != nil {
				return nil, err
			}
			a := &models.Allocation{
				UserID:          userID,
				IncomeID:        incomeID,
				CategoryID:      categoryID,
				AllocationType:  stringArg(p, "allocationType"),
				AllocationValue: decimalArg(p, "allocationValue"),
			}
			if err := b.st.CreateAllocation(p.Context, a); err != nil {
				return nil, err
			}
			return a, nil
		},
	})
	m.AddFieldConfig("updateAllocation", &graphql.Field{
		Type: b.allocationType,
		Args: graphql.FieldConfigArgument{
			"allocationId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"incomeId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"categoryId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"allocationType":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"allocationValue": &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalType)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "allocationId")
			if err != nil {
				return nil, err
			}
			incomeID, err := idArg(p, "incomeId")
			if err != nil {
				return nil, err
			}
			categoryID, err := idArg(p, "categoryId")
			if err != nil {
				return nil, err
			}
			return b.st.UpdateAllocation(p.Context, id, store.AllocationUpdate{
				IncomeID:        incomeID,
				CategoryID:      categoryID,
				AllocationType:  stringArg(p, "allocationType"),
				AllocationValue: decimalArg(p, "allocationValue"),
			})
		},
	})
	m.AddFieldConfig("deleteAllocation", &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"allocationId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "allocationId")
			if err != nil {
				return nil, err
			}
			if err := b.st.DeleteAllocation(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	})

	m.AddFieldConfig("createExpense", &graphql.Field{
		Type: b.expenseType,
		Args: graphql.FieldConfigArgument{
			"userId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"expenseName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalType)},
			"categoryId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"expenseDate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"notes":       &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			userID, err := idArg(p, "userId")
			if err != nil {
				return nil, err
			}
			categoryID, err := idArg(p, "categoryId")
			if err != nil {
				return nil, err
			}
			date, err := timeArg(p, "expenseDate")
			if err != nil {
				return nil, err
			}
			e := &models.Expense{
				UserID:      userID,
				CategoryID:  categoryID,
				ExpenseName: stringArg(p, "expenseName"),
				Amount:      decimalArg(p, "amount"),
				ExpenseDate: date,
				Notes:       optStringArg(p, "notes"),
			}
			if err := b.st.CreateExpense(p.Context, e); err != nil {
				return nil, err
			}
			return e, nil
		},
	})
	m.AddFieldConfig("updateExpense", &graphql.Field{
		Type: b.expenseType,
		Args: graphql.FieldConfigArgument{
			"expenseId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"expenseName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(decimalType)},
			"categoryId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"expenseDate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"notes":       &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "expenseId")
			if err != nil {
				return nil, err
			}
			categoryID, err := idArg(p, "categoryId")
			if err != nil {
				return nil, err
			}
			date, err := timeArg(p, "expenseDate")
			if err != nil {
				return nil, err
			}
			return b.st.UpdateExpense(p.Context, id, store.ExpenseUpdate{
				ExpenseName: stringArg(p, "expenseName"),
				Amount:      decimalArg(p, "amount"),
				CategoryID:  categoryID,
				ExpenseDate: date,
				Notes:       optStringArg(p, "notes"),
			})
		},
	})
	m.AddFieldConfig("deleteExpense", &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"expenseId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := idArg(p, "expenseId")
			if err != nil {
				return nil, err
			}
			if err := b.st.DeleteExpense(p.Context, id); err != nil {
				return nil, err
			}
			return true, nil
		},
	})

	return m
}
