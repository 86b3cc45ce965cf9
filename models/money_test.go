package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMoney_UnmarshalBSONValue(t *testing.T) {
	dec, err := primitive.ParseDecimal128("1500.50")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"decimal128", dec, "1500.5"},
		{"double", 99.5, "99.5"},
		{"int32", int32(42), "42"},
		{"int64", int64(7000000000), "7000000000"},
		{"numeric string", "250.75", "250.75"},
		{"unparseable string", "call us", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, data, err := bson.MarshalValue(tt.value)
			require.NoError(t, err)

			var m Money
			require.NoError(t, m.UnmarshalBSONValue(typ, data))
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_UnmarshalBSONValue_NullAndUnsupported(t *testing.T) {
	m := MoneyFromString("10")
	require.NoError(t, m.UnmarshalBSONValue(bsontype.Null, nil))
	assert.True(t, m.IsZero())

	typ, data, err := bson.MarshalValue(true)
	require.NoError(t, err)
	assert.Error(t, m.UnmarshalBSONValue(typ, data))
}

func TestMoney_RoundTripStoresDecimal128(t *testing.T) {
	type doc struct {
		Price Money `bson:"price"`
	}
	raw, err := bson.Marshal(doc{Price: MoneyFromString("1234.56")})
	require.NoError(t, err)

	assert.Equal(t, bsontype.Decimal128, bson.Raw(raw).Lookup("price").Type)

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, "1234.56", out.Price.String())
}
