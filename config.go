// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// configs is used to store the values of different parameters of the BDD
type configs struct {
	varnum          int                // number of BDD variables
	nodesize        int                // initial number of nodes in the table
	cachesize       int                // initial cache size (general)
	cacheratio      int                // initial ratio (general, 0 if size constant) between cache size and node table
	maxnodesize     int                // Maximum total number of nodes (0 if no limit)
	maxnodeincrease int                // Maximum number of nodes that can be added to the table at each resize (0 if no limit)
	minfreenodes    int                // Minimum number of nodes that should be left after GC before triggering a resize
	logger          logrus.FieldLogger // Destination of log messages
}

// Option is a configuration option for New. See functions Nodesize,
// Maxnodesize, etc.
type Option func(*configs)

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	// we build enough nodes to include all the variables in varset
	c.nodesize = 2*varnum + 2
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial size for the node table. The size of the BDD can
// increase during computation, unless it is bounded with Maxnodesize. By
// default we create a table large enough to include the two constants and the
// "variables" used in the call to Ithvar and NIthvar.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes in the BDD. An operation trying to
// raise the number of nodes above this limit will generate an ErrOutOfNodes
// error and return a nil Node. The default value (0) means that there is no
// limit. In which case allocation can panic if we exhaust all the available
// memory. Use the same value than Nodesize to get a table with a fixed
// capacity.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease is a configuration option (function). Used as a parameter in
// New it sets a limit on the increase in size of the node table. Below this
// limit we typically double the size of the node list each time we need to
// resize it. The default value is about a million nodes. Set the value to zero
// to avoid imposing a limit.
func Maxnodeincrease(size int) Option {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes is a configuration option (function). Used as a parameter in New
// it sets the ratio of free nodes (%) that has to be left after a Garbage
// Collection event. When there is not enough free nodes in the BDD, we try
// reclaiming unused nodes. With a ratio of, say 25, we resize the table if the
// number a free nodes is less than 25% of the capacity of the table (see
// Maxnodesize and Maxnodeincrease). The default value is 20%.
func Minfreenodes(ratio int) Option {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the initial number of entries in the operation caches. The default value
// is one fifth of the node table. Typical values for nodesize are 10 000 nodes
// for small test examples and up to 1 000 000 nodes for large examples. See
// also the Cacheratio config.
func Cachesize(size int) Option {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio is a configuration option (function). Used as a parameter in New
// it sets a "cache ratio" (%) so that caches can grow each time we resize the
// node table. With a cache ratio of r, we have r available entries in the cache
// for every 100 slots in the node table. (A typical value for the cache ratio
// is 25% or 20%). The default value (0) means that the cache size never grows.
func Cacheratio(ratio int) Option {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used to report garbage collections, resizing and errors. By
// default we log warnings and errors on the standard error.
func Logger(l logrus.FieldLogger) Option {
	return func(c *configs) {
		c.logger = l
	}
}

func defaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	if _DEBUG {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("component", "robdd")
}

// ************************************************************

// Config is the file representation of the options of a BDD. Zero values are
// not passed to New, so the defaults apply.
type Config struct {
	Varnum          int    `yaml:"varnum"`
	Nodesize        int    `yaml:"nodesize"`
	Maxnodesize     int    `yaml:"maxnodesize"`
	Maxnodeincrease int    `yaml:"maxnodeincrease"`
	Minfreenodes    int    `yaml:"minfreenodes"`
	Cachesize       int    `yaml:"cachesize"`
	Cacheratio      int    `yaml:"cacheratio"`
	LogLevel        string `yaml:"loglevel"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding config")
	}
	if c.Varnum < 0 || c.Nodesize < 0 || c.Maxnodesize < 0 || c.Maxnodeincrease < 0 || c.Cachesize < 0 || c.Cacheratio < 0 {
		return nil, errors.Wrap(ErrCapacity, "negative value in config")
	}
	if c.Minfreenodes < 0 || c.Minfreenodes > 100 {
		return nil, errors.Wrapf(ErrCapacity, "minfreenodes (%d) not in [0..100]", c.Minfreenodes)
	}
	return c, nil
}

// Options returns the list of options corresponding to c, to be used in a call
// to New.
func (c *Config) Options() ([]Option, error) {
	res := []Option{}
	if c.Nodesize > 0 {
		res = append(res, Nodesize(c.Nodesize))
	}
	if c.Maxnodesize > 0 {
		res = append(res, Maxnodesize(c.Maxnodesize))
	}
	if c.Maxnodeincrease > 0 {
		res = append(res, Maxnodeincrease(c.Maxnodeincrease))
	}
	if c.Minfreenodes > 0 {
		res = append(res, Minfreenodes(c.Minfreenodes))
	}
	if c.Cachesize > 0 {
		res = append(res, Cachesize(c.Cachesize))
	}
	if c.Cacheratio > 0 {
		res = append(res, Cacheratio(c.Cacheratio))
	}
	if c.LogLevel != "" {
		lvl, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Wrap(err, "bad loglevel in config")
		}
		l := logrus.New()
		l.SetLevel(lvl)
		res = append(res, Logger(l.WithField("component", "robdd")))
	}
	return res, nil
}
