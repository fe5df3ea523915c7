// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// Segment 转写文本里一个带时间范围的语义分段。
// 时间范围由转写阶段确定，后续标注只允许改内容字段。
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	// Title 本分段的小标题
	Title string `json:"title"`
	// RedFlag 明确的红旗信号，没有就是空串
	RedFlag string `json:"redflag"`
	// Doubt 存疑但不到红旗程度的点
	Doubt string `json:"doubt"`
	// FactPlus 与外部资料相互印证的陈述
	FactPlus []string `json:"factPlus"`
	// FactMinus 与外部资料冲突的陈述
	FactMinus []string `json:"factMinus"`
}

// Transcription 一次转写的完整产物。
// Degraded 表示分段这一步失败了，但整段文本仍然可用。
type Transcription struct {
	Text     string
	Segments []Segment
	Degraded bool
}
