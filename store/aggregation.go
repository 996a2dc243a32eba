package store

import "go.mongodb.org/mongo-driver/bson"

// AggregationGroup helps generate aggregation object for $group
func AggregationGroup(id interface{}, groupConditions bson.D) bson.D {
	group := bson.D{bson.E{Key: "_id", Value: id}}
	group = append(group, groupConditions...)

	return bson.D{
		bson.E{Key: "$group", Value: group},
	}
}

// AggregationSort helps generate aggregation object for $sort
func AggregationSort(sortCondition bson.M) bson.D {
	sort := bson.D{}
	for k, v := range sortCondition {
		sort = append(sort, bson.E{Key: k, Value: v})
	}

	return bson.D{
		bson.E{Key: "$sort", Value: sort},
	}
}
