/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that
 * stores and retrieves data using Amazon S3, used to persist cached
 * roster pages across bot instances.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const objectPrefix = "webcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the cache uses when interacting with S3.
	// By default this is initialized in Init() with the default Config,
	// but callers can optionally override this with their own s3 client
	// if desired.
	Client *s3.Client

	bucketName string

	// gzip indicates whether cache entries should be gzipped in Set and
	// gunzipped in Get. If true, object keys carry a ".gz" suffix.
	gzip bool

	logErrors bool

	// The context to specify when initiating s3 requests
	ctx context.Context
}

// New returns a new Cache backed by the specified Amazon S3 bucket.
// Callers should invoke Init() on the returned Cache before use.
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logErrorsIn bool) *Cache {

	return &Cache{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
	}
}

// Init loads AWS configuration from the default sources (environment
// variables, shared config/credentials files) and verifies the bucket
// is accessible.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}
	if _, err = c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		// no such key just indicates a cache miss
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, false
		}
		c.logf("s3cache.get: failed to get object %v/%v: %v", c.bucketName,
			objKey, err)
		return nil, false
	}
	defer resp.Body.Close()

	rdr := io.Reader(resp.Body)
	if c.gzip {
		gzRdr, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v/%v: %v",
				c.bucketName, objKey, err)
			return nil, false
		}
		defer gzRdr.Close()
		rdr = gzRdr
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v/%v: %v", c.bucketName,
			objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip data for %v/%v: %v",
				c.bucketName, objKey, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to close gzip writer for %v/%v: %v",
				c.bucketName, objKey, err)
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v/%v: %v", c.bucketName, objKey,
			err)
	}
}

func (c *Cache) Delete(key string) {
	if _, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	}); err != nil {
		c.logf("s3cache.delete: delete failed: %v", err)
	}
}

// objectKey hashes the cache key into a stable S3 object key; cache
// keys are URLs and may contain characters S3 handles poorly.
func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := fmt.Sprintf("%v/%v", objectPrefix, hex.EncodeToString(sum[:]))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.logErrors {
		log.Printf(format, args...)
	}
}
