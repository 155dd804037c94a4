/*
Copyright 2024 The BizDock Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bizdock/jira-link/core/settings/repository/models"
	"github.com/bizdock/jira-link/pkg/config"
	"github.com/bizdock/jira-link/pkg/tool/log"
	mongotool "github.com/bizdock/jira-link/pkg/tool/mongo"
)

type SettingColl struct {
	*mongo.Collection

	coll string
}

func NewSettingColl() *SettingColl {
	name := models.Setting{}.TableName()
	coll := &SettingColl{Collection: mongotool.Database(config.MongoDatabase()).Collection(name), coll: name}

	return coll
}

func (c *SettingColl) GetCollectionName() string {
	return c.coll
}

func (c *SettingColl) EnsureIndex(ctx context.Context) error {
	mod := mongo.IndexModel{
		Keys:    bson.M{"key": 1},
		Options: options.Index().SetUnique(true),
	}

	_, err := c.Indexes().CreateOne(ctx, mod)
	return err
}

// Get returns the stored value for key; the second result reports whether
// the key exists at all.
func (c *SettingColl) Get(key string) (string, bool, error) {
	setting := &models.Setting{}
	query := bson.M{"key": key}

	err := c.Collection.FindOne(context.TODO(), query).Decode(setting)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		log.Errorf("repository GetSetting %s err : %v", key, err)
		return "", false, err
	}
	return setting.Value, true, nil
}

// Put upserts the value for key.
func (c *SettingColl) Put(key, value string) error {
	query := bson.M{"key": key}
	change := bson.M{"$set": bson.M{
		"value":      value,
		"updated_at": time.Now().Unix(),
	}}

	_, err := c.Collection.UpdateOne(context.TODO(), query, change, options.Update().SetUpsert(true))
	if err != nil {
		log.Errorf("repository PutSetting %s err : %v", key, err)
		return err
	}
	return nil
}
