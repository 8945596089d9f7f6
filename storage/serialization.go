// Copyright 2025 Amharies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/amharies/BIONARY--CHATBOT/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalEventRecord serializes an EventRecord to bytes.
func MarshalEventRecord(record *core.EventRecord) []byte {
	buf := make([]byte, core.EventRecordMUS.Size(*record))
	core.EventRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalEventRecord deserializes an EventRecord from bytes.
func UnmarshalEventRecord(data []byte) (*core.EventRecord, error) {
	record, _, err := core.EventRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalQueryLog serializes a QueryLog to bytes.
func MarshalQueryLog(entry *core.QueryLog) []byte {
	buf := make([]byte, core.QueryLogMUS.Size(*entry))
	core.QueryLogMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalQueryLog deserializes a QueryLog from bytes.
func UnmarshalQueryLog(data []byte) (*core.QueryLog, error) {
	entry, _, err := core.QueryLogMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
